package memory

import (
	"context"
	"sync"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// UserFake is an in-memory UserRepository covering users and their profiles.
type UserFake struct {
	fakeCore
	storeMu  sync.Mutex
	users    []entity.User
	profiles []entity.UserProfile
}

func NewUserFake() *UserFake { return &UserFake{} }

var _ repository.UserRepository = (*UserFake)(nil)

func (f *UserFake) Reset() {
	f.storeMu.Lock()
	f.users = nil
	f.profiles = nil
	f.storeMu.Unlock()
	f.resetCore()
}

func (f *UserFake) SeedUsers(users ...entity.User) {
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	f.users = append(f.users, users...)
}

func (f *UserFake) SeedProfiles(profiles ...entity.UserProfile) {
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	f.profiles = append(f.profiles, profiles...)
}

func (f *UserFake) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if err := f.begin(ctx, "GetUser", id); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			uu := u
			return &uu, nil
		}
	}
	return nil, repository.NotFound("user " + id)
}

func (f *UserFake) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := f.begin(ctx, "GetUserByEmail", email); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			uu := u
			return &uu, nil
		}
	}
	return nil, repository.NotFound("user by email " + email)
}

func (f *UserFake) UpdateUser(ctx context.Context, u *entity.User) error {
	if err := f.begin(ctx, "UpdateUser", u); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
			return nil
		}
	}
	return nil
}

func (f *UserFake) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if err := f.begin(ctx, "GetProfile", userID); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, p := range f.profiles {
		if p.UserID == userID {
			pp := p
			return &pp, nil
		}
	}
	return nil, repository.NotFound("profile for user " + userID)
}

func (f *UserFake) CreateProfile(ctx context.Context, p *entity.UserProfile) error {
	if err := f.begin(ctx, "CreateProfile", p); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *UserFake) UpdateProfile(ctx context.Context, p *entity.UserProfile) error {
	if err := f.begin(ctx, "UpdateProfile", p); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.profiles {
		if f.profiles[i].ID == p.ID {
			f.profiles[i] = *p
			return nil
		}
	}
	return nil
}

package memory

import (
	"context"
	"sync"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// AuthFake is an in-memory AuthRepository. Accounts live in a map of email
// to password; the cached current user models the device's last-known auth
// state.
type AuthFake struct {
	fakeCore
	storeMu   sync.Mutex
	accounts  map[string]string      // email -> password
	users     map[string]entity.User // email -> user
	current   *entity.User
}

func NewAuthFake() *AuthFake {
	return &AuthFake{
		accounts: map[string]string{},
		users:    map[string]entity.User{},
	}
}

var _ repository.AuthRepository = (*AuthFake)(nil)

func (f *AuthFake) Reset() {
	f.storeMu.Lock()
	f.accounts = map[string]string{}
	f.users = map[string]entity.User{}
	f.current = nil
	f.storeMu.Unlock()
	f.resetCore()
}

func (f *AuthFake) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	if err := f.begin(ctx, "SignIn", email, password); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	stored, ok := f.accounts[email]
	if !ok || stored != password {
		return nil, repository.Unauthorized("invalid credentials")
	}
	u := f.users[email]
	f.current = &u
	uu := u
	return &uu, nil
}

func (f *AuthFake) SignUp(ctx context.Context, email, password string) (*entity.User, error) {
	if err := f.begin(ctx, "SignUp", email, password); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	if _, exists := f.accounts[email]; exists {
		return nil, repository.ValidationFailed("email already registered")
	}
	u := entity.NewUser(email)
	f.accounts[email] = password
	f.users[email] = *u
	f.current = u
	uu := *u
	return &uu, nil
}

// SignOut clears the cached session unconditionally: even when a fault is
// injected, the local state must never contradict the user's intent to
// leave.
func (f *AuthFake) SignOut(ctx context.Context) error {
	err := f.begin(ctx, "SignOut")
	f.storeMu.Lock()
	f.current = nil
	f.storeMu.Unlock()
	return err
}

func (f *AuthFake) CurrentUser() *entity.User {
	f.record("CurrentUser")
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	if f.current == nil {
		return nil
	}
	u := *f.current
	return &u
}

// DeleteAccount clears the cached session unconditionally; the account
// record itself is only removed when no fault is injected.
func (f *AuthFake) DeleteAccount(ctx context.Context) error {
	err := f.begin(ctx, "DeleteAccount")
	f.storeMu.Lock()
	cur := f.current
	f.current = nil
	if err == nil && cur != nil {
		delete(f.accounts, cur.Email)
		delete(f.users, cur.Email)
	}
	f.storeMu.Unlock()
	return err
}

package memory

import (
	"context"
	"sync"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// CollectionFake is an in-memory CollectionRepository.
type CollectionFake struct {
	fakeCore
	storeMu     sync.Mutex
	collections []entity.Collection
}

func NewCollectionFake() *CollectionFake { return &CollectionFake{} }

var _ repository.CollectionRepository = (*CollectionFake)(nil)

func (f *CollectionFake) Reset() {
	f.storeMu.Lock()
	f.collections = nil
	f.storeMu.Unlock()
	f.resetCore()
}

func (f *CollectionFake) Seed(cols ...entity.Collection) {
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, c := range cols {
		f.collections = append(f.collections, cloneCollection(c))
	}
}

func (f *CollectionFake) GetCollections(ctx context.Context, userID string) ([]entity.Collection, error) {
	if err := f.begin(ctx, "GetCollections", userID); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	out := []entity.Collection{}
	for _, c := range f.collections {
		if c.UserID == userID {
			out = append(out, cloneCollection(c))
		}
	}
	return out, nil
}

func (f *CollectionFake) GetCollection(ctx context.Context, id string) (*entity.Collection, error) {
	if err := f.begin(ctx, "GetCollection", id); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, c := range f.collections {
		if c.ID == id {
			cc := cloneCollection(c)
			return &cc, nil
		}
	}
	return nil, repository.NotFound("collection " + id)
}

func (f *CollectionFake) CreateCollection(ctx context.Context, c *entity.Collection) error {
	if err := f.begin(ctx, "CreateCollection", c); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	f.collections = append(f.collections, cloneCollection(*c))
	return nil
}

func (f *CollectionFake) UpdateCollection(ctx context.Context, c *entity.Collection) error {
	if err := f.begin(ctx, "UpdateCollection", c); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.collections {
		if f.collections[i].ID == c.ID {
			f.collections[i] = cloneCollection(*c)
			return nil
		}
	}
	return nil
}

func (f *CollectionFake) DeleteCollection(ctx context.Context, id string) error {
	if err := f.begin(ctx, "DeleteCollection", id); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.collections {
		if f.collections[i].ID == id {
			f.collections = append(f.collections[:i], f.collections[i+1:]...)
			return nil
		}
	}
	return nil
}

func cloneCollection(c entity.Collection) entity.Collection {
	cc := c
	cc.Tags = append([]string(nil), c.Tags...)
	return cc
}

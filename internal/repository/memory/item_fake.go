package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// ItemFake is an in-memory ItemRepository keeping items in insertion order.
type ItemFake struct {
	fakeCore
	storeMu sync.Mutex
	items   []entity.Item
}

func NewItemFake() *ItemFake { return &ItemFake{} }

var _ repository.ItemRepository = (*ItemFake)(nil)

// Reset clears the backing store, counters, captured arguments, and fault
// configuration.
func (f *ItemFake) Reset() {
	f.storeMu.Lock()
	f.items = nil
	f.storeMu.Unlock()
	f.resetCore()
}

// Seed inserts items directly, bypassing counters and fault injection.
func (f *ItemFake) Seed(items ...entity.Item) {
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, it := range items {
		f.items = append(f.items, cloneItem(it))
	}
}

func (f *ItemFake) GetItems(ctx context.Context, userID string) ([]entity.Item, error) {
	if err := f.begin(ctx, "GetItems", userID); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	out := []entity.Item{}
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

func (f *ItemFake) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	if err := f.begin(ctx, "GetItem", id); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			c := cloneItem(it)
			return &c, nil
		}
	}
	return nil, repository.NotFound("item " + id)
}

func (f *ItemFake) GetItemCount(ctx context.Context, collectionID string) (int, error) {
	if err := f.begin(ctx, "GetItemCount", collectionID); err != nil {
		return 0, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	n := 0
	for _, it := range f.items {
		if it.CollectionID == collectionID {
			n++
		}
	}
	return n, nil
}

func (f *ItemFake) CreateItem(ctx context.Context, it *entity.Item) error {
	if err := f.begin(ctx, "CreateItem", it); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	f.items = append(f.items, cloneItem(*it))
	return nil
}

// UpdateItem replaces the stored item by id; updating an absent id is a
// no-op.
func (f *ItemFake) UpdateItem(ctx context.Context, it *entity.Item) error {
	if err := f.begin(ctx, "UpdateItem", it); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.items {
		if f.items[i].ID == it.ID {
			f.items[i] = cloneItem(*it)
			return nil
		}
	}
	return nil
}

func (f *ItemFake) DeleteItem(ctx context.Context, id string) error {
	if err := f.begin(ctx, "DeleteItem", id); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *ItemFake) SearchItems(ctx context.Context, query, userID string) ([]entity.Item, error) {
	if err := f.begin(ctx, "SearchItems", query, userID); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	q := strings.ToLower(query)
	out := []entity.Item{}
	for _, it := range f.items {
		if it.UserID == userID && strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

func cloneItem(it entity.Item) entity.Item {
	c := it
	c.ImageURLs = append([]string(nil), it.ImageURLs...)
	c.Tags = append([]string(nil), it.Tags...)
	if it.CustomFields != nil {
		c.CustomFields = make(map[string]entity.CustomFieldValue, len(it.CustomFields))
		for k, v := range it.CustomFields {
			c.CustomFields[k] = v
		}
	}
	if it.Location != nil {
		loc := *it.Location
		c.Location = &loc
	}
	if it.Rating != nil {
		r := *it.Rating
		c.Rating = &r
	}
	return c
}

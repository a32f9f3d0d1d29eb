package repository

import (
	"context"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
)

// ItemRepository defines item persistence operations.
//
// SearchItems matches a case-insensitive substring of the item name, scoped
// to the given user. Order is implementation-defined but stable.
type ItemRepository interface {
	GetItems(ctx context.Context, userID string) ([]entity.Item, error)
	GetItem(ctx context.Context, id string) (*entity.Item, error)
	GetItemCount(ctx context.Context, collectionID string) (int, error)
	CreateItem(ctx context.Context, it *entity.Item) error
	UpdateItem(ctx context.Context, it *entity.Item) error
	// DeleteItem removes the item; deleting an absent id is not an error.
	DeleteItem(ctx context.Context, id string) error
	SearchItems(ctx context.Context, query, userID string) ([]entity.Item, error)
}

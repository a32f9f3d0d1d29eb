package repository

import (
	"context"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
)

// CollectionRepository defines collection persistence operations.
// Create, Update, and Delete are atomic from the caller's perspective.
type CollectionRepository interface {
	GetCollections(ctx context.Context, userID string) ([]entity.Collection, error)
	GetCollection(ctx context.Context, id string) (*entity.Collection, error)
	CreateCollection(ctx context.Context, c *entity.Collection) error
	UpdateCollection(ctx context.Context, c *entity.Collection) error
	DeleteCollection(ctx context.Context, id string) error
}

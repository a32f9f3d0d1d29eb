package repository

import (
	"context"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
)

// TemplateRepository defines template persistence operations.
//
// SearchTemplates matches a case-insensitive substring of the template name;
// a non-empty category narrows results to exact category matches.
// GetFeaturedTemplates returns public templates ordered by descending
// download count with a stable tie order.
type TemplateRepository interface {
	GetTemplates(ctx context.Context, creatorID string) ([]entity.Template, error)
	GetTemplate(ctx context.Context, id string) (*entity.Template, error)
	CreateTemplate(ctx context.Context, t *entity.Template) error
	UpdateTemplate(ctx context.Context, t *entity.Template) error
	DeleteTemplate(ctx context.Context, id string) error
	SearchTemplates(ctx context.Context, query, category string) ([]entity.Template, error)
	GetFeaturedTemplates(ctx context.Context) ([]entity.Template, error)
	IncrementDownloads(ctx context.Context, id string) error
}

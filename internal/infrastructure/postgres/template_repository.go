package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

type TemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

var _ repository.TemplateRepository = (*TemplateRepository)(nil)

const templateColumns = `id, creator_id, name, description, category, components,
	preview_url, favorite, tags, is_public, is_premium, downloads, rating,
	created_at, updated_at`

func scanTemplate(row pgx.Row) (*entity.Template, error) {
	t := &entity.Template{}
	var compRaw []byte
	if err := row.Scan(&t.ID, &t.CreatorID, &t.Name, &t.Description, &t.Category,
		&compRaw, &t.PreviewURL, &t.Favorite, &t.Tags, &t.IsPublic, &t.IsPremium,
		&t.Downloads, &t.Rating, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Components = []entity.ComponentDefinition{}
	if len(compRaw) > 0 {
		if err := json.Unmarshal(compRaw, &t.Components); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func collectTemplates(rows pgx.Rows) ([]entity.Template, error) {
	out := []entity.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, wrapErr("scan template", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate templates", err)
	}
	return out, nil
}

func (r *TemplateRepository) GetTemplates(ctx context.Context, creatorID string) ([]entity.Template, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM templates
		WHERE creator_id = $1
		ORDER BY created_at, id
	`, creatorID)
	if err != nil {
		return nil, wrapErr("get templates", err)
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *TemplateRepository) GetTemplate(ctx context.Context, id string) (*entity.Template, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM templates
		WHERE id = $1
	`, id)
	t, err := scanTemplate(row)
	if err != nil {
		return nil, notFoundOr("get template", "template "+id, err)
	}
	return t, nil
}

func (r *TemplateRepository) CreateTemplate(ctx context.Context, t *entity.Template) error {
	comp, err := json.Marshal(t.Components)
	if err != nil {
		return repository.WrapError(repository.KindValidationFailed, "encode template", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO templates (id, creator_id, name, description, category, components,
			preview_url, favorite, tags, is_public, is_premium, downloads, rating,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, t.ID, t.CreatorID, t.Name, t.Description, t.Category, comp, t.PreviewURL,
		t.Favorite, t.Tags, t.IsPublic, t.IsPremium, t.Downloads, t.Rating,
		t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return wrapErr("create template", err)
	}
	return nil
}

func (r *TemplateRepository) UpdateTemplate(ctx context.Context, t *entity.Template) error {
	comp, err := json.Marshal(t.Components)
	if err != nil {
		return repository.WrapError(repository.KindValidationFailed, "encode template", err)
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE templates
		SET name = $1, description = $2, category = $3, components = $4,
			preview_url = $5, favorite = $6, tags = $7, is_public = $8,
			is_premium = $9, rating = $10, updated_at = $11
		WHERE id = $12
	`, t.Name, t.Description, t.Category, comp, t.PreviewURL, t.Favorite, t.Tags,
		t.IsPublic, t.IsPremium, t.Rating, t.UpdatedAt, t.ID)
	if err != nil {
		return wrapErr("update template", err)
	}
	return nil
}

func (r *TemplateRepository) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id); err != nil {
		return wrapErr("delete template", err)
	}
	return nil
}

func (r *TemplateRepository) SearchTemplates(ctx context.Context, query, category string) ([]entity.Template, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM templates
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
			AND ($2 = '' OR category = $2)
		ORDER BY created_at, id
	`, escapeLike(query), category)
	if err != nil {
		return nil, wrapErr("search templates", err)
	}
	defer rows.Close()
	return collectTemplates(rows)
}

// GetFeaturedTemplates returns public templates by descending download
// count; ties fall back to id order so the result is stable.
func (r *TemplateRepository) GetFeaturedTemplates(ctx context.Context) ([]entity.Template, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM templates
		WHERE is_public
		ORDER BY downloads DESC, id
	`)
	if err != nil {
		return nil, wrapErr("featured templates", err)
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *TemplateRepository) IncrementDownloads(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE templates SET downloads = downloads + 1 WHERE id = $1
	`, id)
	if err != nil {
		return wrapErr("increment downloads", err)
	}
	if res.RowsAffected() == 0 {
		return repository.NotFound("template " + id)
	}
	return nil
}

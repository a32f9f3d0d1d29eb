package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

type CollectionRepository struct {
	pool *pgxpool.Pool
}

func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{pool: pool}
}

var _ repository.CollectionRepository = (*CollectionRepository)(nil)

const collectionColumns = `id, user_id, name, description, coalesce(template_id, ''),
	item_count, favorite, tags, is_public, created_at, updated_at`

func scanCollection(row pgx.Row) (*entity.Collection, error) {
	c := &entity.Collection{}
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.TemplateID,
		&c.ItemCount, &c.Favorite, &c.Tags, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CollectionRepository) GetCollections(ctx context.Context, userID string) ([]entity.Collection, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+collectionColumns+`
		FROM collections
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, wrapErr("get collections", err)
	}
	defer rows.Close()

	out := []entity.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, wrapErr("scan collection", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate collections", err)
	}
	return out, nil
}

func (r *CollectionRepository) GetCollection(ctx context.Context, id string) (*entity.Collection, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+collectionColumns+`
		FROM collections
		WHERE id = $1
	`, id)
	c, err := scanCollection(row)
	if err != nil {
		return nil, notFoundOr("get collection", "collection "+id, err)
	}
	return c, nil
}

func (r *CollectionRepository) CreateCollection(ctx context.Context, c *entity.Collection) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO collections (id, user_id, name, description, template_id,
			item_count, favorite, tags, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)
	`, c.ID, c.UserID, c.Name, c.Description, c.TemplateID, c.ItemCount,
		c.Favorite, c.Tags, c.IsPublic, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return wrapErr("create collection", err)
	}
	return nil
}

func (r *CollectionRepository) UpdateCollection(ctx context.Context, c *entity.Collection) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE collections
		SET name = $1, description = $2, template_id = NULLIF($3, ''), item_count = $4,
			favorite = $5, tags = $6, is_public = $7, updated_at = $8
		WHERE id = $9
	`, c.Name, c.Description, c.TemplateID, c.ItemCount, c.Favorite, c.Tags,
		c.IsPublic, c.UpdatedAt, c.ID)
	if err != nil {
		return wrapErr("update collection", err)
	}
	return nil
}

func (r *CollectionRepository) DeleteCollection(ctx context.Context, id string) error {
	// items reference collections with ON DELETE CASCADE
	if _, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id); err != nil {
		return wrapErr("delete collection", err)
	}
	return nil
}

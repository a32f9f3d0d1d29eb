package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

var _ repository.ItemRepository = (*ItemRepository)(nil)

const itemColumns = `id, user_id, collection_id, name, description, image_urls,
	custom_fields, favorite, tags, location, rating, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	it := &entity.Item{}
	var cfRaw, locRaw []byte
	if err := row.Scan(&it.ID, &it.UserID, &it.CollectionID, &it.Name, &it.Description,
		&it.ImageURLs, &cfRaw, &it.Favorite, &it.Tags, &locRaw, &it.Rating,
		&it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	it.CustomFields = map[string]entity.CustomFieldValue{}
	if len(cfRaw) > 0 {
		if err := json.Unmarshal(cfRaw, &it.CustomFields); err != nil {
			return nil, err
		}
	}
	if len(locRaw) > 0 {
		loc := &entity.Location{}
		if err := json.Unmarshal(locRaw, loc); err != nil {
			return nil, err
		}
		it.Location = loc
	}
	return it, nil
}

func itemJSON(it *entity.Item) (cf, loc []byte, err error) {
	cf, err = json.Marshal(it.CustomFields)
	if err != nil {
		return nil, nil, err
	}
	if it.Location != nil {
		loc, err = json.Marshal(it.Location)
		if err != nil {
			return nil, nil, err
		}
	}
	return cf, loc, nil
}

func (r *ItemRepository) GetItems(ctx context.Context, userID string) ([]entity.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, wrapErr("get items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1
	`, id)
	it, err := scanItem(row)
	if err != nil {
		return nil, notFoundOr("get item", "item "+id, err)
	}
	return it, nil
}

func (r *ItemRepository) GetItemCount(ctx context.Context, collectionID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM items WHERE collection_id = $1
	`, collectionID).Scan(&n); err != nil {
		return 0, wrapErr("count items", err)
	}
	return n, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, it *entity.Item) error {
	cf, loc, err := itemJSON(it)
	if err != nil {
		return repository.WrapError(repository.KindValidationFailed, "encode item", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO items (id, user_id, collection_id, name, description, image_urls,
			custom_fields, favorite, tags, location, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, it.ID, it.UserID, it.CollectionID, it.Name, it.Description, it.ImageURLs,
		cf, it.Favorite, it.Tags, loc, it.Rating, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return wrapErr("create item", err)
	}
	return nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, it *entity.Item) error {
	cf, loc, err := itemJSON(it)
	if err != nil {
		return repository.WrapError(repository.KindValidationFailed, "encode item", err)
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE items
		SET name = $1, description = $2, image_urls = $3, custom_fields = $4,
			favorite = $5, tags = $6, location = $7, rating = $8, updated_at = $9,
			collection_id = $10
		WHERE id = $11
	`, it.Name, it.Description, it.ImageURLs, cf, it.Favorite, it.Tags, loc,
		it.Rating, it.UpdatedAt, it.CollectionID, it.ID)
	if err != nil {
		return wrapErr("update item", err)
	}
	return nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return wrapErr("delete item", err)
	}
	return nil
}

func (r *ItemRepository) SearchItems(ctx context.Context, query, userID string) ([]entity.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE user_id = $1 AND name ILIKE '%' || $2 || '%' ESCAPE '\'
		ORDER BY created_at, id
	`, userID, escapeLike(query))
	if err != nil {
		return nil, wrapErr("search items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]entity.Item, error) {
	out := []entity.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, wrapErr("scan item", err)
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate items", err)
	}
	return out, nil
}

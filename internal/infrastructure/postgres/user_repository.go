package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ repository.UserRepository = (*UserRepository)(nil)

const userColumns = `id, email, password_hash, display_name, photo_url, is_verified, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName,
		&u.PhotoURL, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFoundOr("get user", "user "+id, err)
	}
	return u, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFoundOr("get user by email", "user by email "+email, err)
	}
	return u, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, display_name = $2, photo_url = $3, is_verified = $4, updated_at = $5
		WHERE id = $6
	`, u.Email, u.DisplayName, u.PhotoURL, u.IsVerified, u.UpdatedAt, u.ID)
	if err != nil {
		return wrapErr("update user", err)
	}
	return nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	p := &entity.UserProfile{}
	var prefRaw, subRaw []byte
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, display_name, bio, preferences, subscription, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &prefRaw, &subRaw,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFoundOr("get profile", "profile for user "+userID, err)
	}
	if len(prefRaw) > 0 {
		if err := json.Unmarshal(prefRaw, &p.Preferences); err != nil {
			return nil, wrapErr("decode preferences", err)
		}
	}
	if len(subRaw) > 0 {
		sub := &entity.SubscriptionInfo{}
		if err := json.Unmarshal(subRaw, sub); err != nil {
			return nil, wrapErr("decode subscription", err)
		}
		p.Subscription = sub
	}
	return p, nil
}

func (r *UserRepository) CreateProfile(ctx context.Context, p *entity.UserProfile) error {
	pref, sub, err := profileJSON(p)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO user_profiles (id, user_id, display_name, bio, preferences, subscription, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.UserID, p.DisplayName, p.Bio, pref, sub, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return wrapErr("create profile", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, p *entity.UserProfile) error {
	pref, sub, err := profileJSON(p)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE user_profiles
		SET display_name = $1, bio = $2, preferences = $3, subscription = $4, updated_at = $5
		WHERE id = $6
	`, p.DisplayName, p.Bio, pref, sub, p.UpdatedAt, p.ID)
	if err != nil {
		return wrapErr("update profile", err)
	}
	return nil
}

func profileJSON(p *entity.UserProfile) (pref, sub []byte, err error) {
	pref, err = json.Marshal(p.Preferences)
	if err != nil {
		return nil, nil, repository.WrapError(repository.KindValidationFailed, "encode preferences", err)
	}
	if p.Subscription != nil {
		sub, err = json.Marshal(p.Subscription)
		if err != nil {
			return nil, nil, repository.WrapError(repository.KindValidationFailed, "encode subscription", err)
		}
	}
	return pref, sub, nil
}

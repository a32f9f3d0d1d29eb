package postgres

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

// AuthRepository manages credentials in Postgres and keeps the last-known
// auth state cached in-process. Server-side session records are the auth
// use case's concern, not this repository's.
type AuthRepository struct {
	pool *pgxpool.Pool

	mu      sync.RWMutex
	current *entity.User
}

func NewAuthRepository(pool *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{pool: pool}
}

var _ repository.AuthRepository = (*AuthRepository)(nil)

func (r *AuthRepository) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.Unauthorized("invalid credentials")
		}
		return nil, wrapErr("sign in", err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, repository.Unauthorized("invalid credentials")
	}
	r.setCurrent(u)
	return u, nil
}

func (r *AuthRepository) SignUp(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, repository.WrapError(repository.KindValidationFailed, "hash password", err)
	}
	u := entity.NewUser(email)
	u.PasswordHash = hash
	_, err = r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, display_name, photo_url, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Email, u.PasswordHash, u.DisplayName, u.PhotoURL, u.IsVerified,
		u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return nil, wrapErr("sign up", err)
	}
	r.setCurrent(u)
	return u, nil
}

// SignOut clears the cached auth state. It never fails: a device must not
// look signed in after the user asked to leave.
func (r *AuthRepository) SignOut(ctx context.Context) error {
	r.mu.Lock()
	r.current = nil
	r.mu.Unlock()
	return nil
}

// CurrentUser returns the last-known cached auth state without blocking.
func (r *AuthRepository) CurrentUser() *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil
	}
	u := *r.current
	return &u
}

// DeleteAccount clears the cached auth state unconditionally before touching
// the backend; the users row cascades to profiles, collections, and items.
func (r *AuthRepository) DeleteAccount(ctx context.Context) error {
	r.mu.Lock()
	cur := r.current
	r.current = nil
	r.mu.Unlock()

	if cur == nil {
		return repository.Unauthorized("no active session")
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, cur.ID); err != nil {
		return wrapErr("delete account", err)
	}
	return nil
}

func (r *AuthRepository) setCurrent(u *entity.User) {
	r.mu.Lock()
	uu := *u
	r.current = &uu
	r.mu.Unlock()
}

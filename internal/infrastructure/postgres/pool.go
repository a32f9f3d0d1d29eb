package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

func NewPool(ctx context.Context, dsn string, maxConns, minConns int32, maxConnLife time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = maxConnLife
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

const uniqueViolation = "23505"

// wrapErr maps backend failures onto the repository error taxonomy. The
// backend message text is preserved through the wrap.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.WrapError(repository.KindValidationFailed, op, err)
	}
	return repository.WrapError(repository.KindUnavailable, op, err)
}

// notFoundOr translates pgx.ErrNoRows into a typed NotFound.
func notFoundOr(op, what string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.NotFound(what)
	}
	return wrapErr(op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search query is matched
// as a literal substring. Queries using it must carry ESCAPE '\'.
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

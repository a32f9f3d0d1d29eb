package repository

import (
	"context"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
)

// AuthRepository manages credentials and the locally cached session.
//
// SignOut and DeleteAccount clear local auth state unconditionally, even when
// the remote call fails: a device must never look signed in after the user
// asked to leave.
type AuthRepository interface {
	SignIn(ctx context.Context, email, password string) (*entity.User, error)
	SignUp(ctx context.Context, email, password string) (*entity.User, error)
	SignOut(ctx context.Context) error
	// CurrentUser returns the last-known cached auth state without blocking.
	// It is nil when no session is cached.
	CurrentUser() *entity.User
	DeleteAccount(ctx context.Context) error
}

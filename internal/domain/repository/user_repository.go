package repository

import (
	"context"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
)

// UserRepository defines user and profile persistence operations.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, u *entity.User) error

	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	CreateProfile(ctx context.Context, p *entity.UserProfile) error
	UpdateProfile(ctx context.Context, p *entity.UserProfile) error
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	PhotoURL     string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a freshly signed-up user with a generated id.
func NewUser(email string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps UpdatedAt; CreatedAt never moves.
func (u *User) Touch() { u.UpdatedAt = time.Now().UTC() }

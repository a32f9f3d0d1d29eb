package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

func TestUserFakeLookup(t *testing.T) {
	f := NewUserFake()
	ctx := context.Background()

	u := entity.NewUser("ada@example.com")
	f.SeedUsers(*u)

	byID, err := f.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)

	byEmail, err := f.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = f.GetUser(ctx, "missing")
	assert.True(t, repository.IsKind(err, repository.KindNotFound))
	_, err = f.GetUserByEmail(ctx, "nobody@example.com")
	assert.True(t, repository.IsKind(err, repository.KindNotFound))
}

func TestUserFakeProfileRoundTrip(t *testing.T) {
	f := NewUserFake()
	ctx := context.Background()

	p := entity.NewUserProfile("u1", "Ada")
	require.NoError(t, f.CreateProfile(ctx, p))

	got, err := f.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, *p, *got)

	got.Bio = "coffee person"
	got.Touch()
	require.NoError(t, f.UpdateProfile(ctx, got))
	again, err := f.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "coffee person", again.Bio)

	_, err = f.GetProfile(ctx, "u2")
	assert.True(t, repository.IsKind(err, repository.KindNotFound))
}

func TestUserFakeUpdateUser(t *testing.T) {
	f := NewUserFake()
	ctx := context.Background()
	u := entity.NewUser("ada@example.com")
	f.SeedUsers(*u)

	u.DisplayName = "Ada"
	u.IsVerified = true
	require.NoError(t, f.UpdateUser(ctx, u))

	got, err := f.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.DisplayName)
	assert.True(t, got.IsVerified)
}

package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/repository/memory"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

func newAuthFixture() (*AuthService, *memory.AuthFake, *memory.UserFake) {
	auth := memory.NewAuthFake()
	users := memory.NewUserFake()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	svc := NewAuthService(auth, users, jwt, nil, nil, nil, "http://app.test", "http://app.test/verify")
	return svc, auth, users
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	svc, auth, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.DisplayName)
	assert.Equal(t, 1, auth.CallCount("SignUp"))

	// profile exists but the user row is looked up by the auth fake's store,
	// so seed the user fake the way the real backend shares one users table
	users.SeedUsers(*u)
	p, err := users.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.DisplayName)
	assert.Equal(t, u.ID, p.UserID)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)
	users.SeedUsers(*u)

	res, pair, err := svc.Login(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshTokenExpiry.After(pair.AccessTokenExpiry))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.NotEmpty(t, claims.SessionID)
}

func TestLoginBadPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, _, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)
	users.SeedUsers(*u)

	_, pair, err := svc.Login(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	newPair, uid, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)

	old, err := svc.JWT.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	rotated, err := svc.JWT.ParseRefreshToken(newPair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, old.SessionID, rotated.SessionID, "refresh rotates the session id")
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture()
	_, _, err := svc.Refresh(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsAuthState(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)
	require.NotNil(t, svc.CurrentUser())

	require.NoError(t, svc.Logout(ctx, u.ID))
	assert.Nil(t, svc.CurrentUser())
}

func TestDeleteAccountClearsAuthState(t *testing.T) {
	svc, auth, _ := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, u.ID))
	assert.Nil(t, svc.CurrentUser())
	assert.Equal(t, 1, auth.CallCount("DeleteAccount"))
}

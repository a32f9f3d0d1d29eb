package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

func TestAuthFakeSignUpThenSignIn(t *testing.T) {
	f := NewAuthFake()
	ctx := context.Background()

	u, err := f.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	require.NotNil(t, f.CurrentUser())

	require.NoError(t, f.SignOut(ctx))
	assert.Nil(t, f.CurrentUser())

	got, err := f.SignIn(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.ID, f.CurrentUser().ID)
}

func TestAuthFakeSignInRejectsBadCredentials(t *testing.T) {
	f := NewAuthFake()
	ctx := context.Background()
	_, err := f.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, f.SignOut(ctx))

	_, err = f.SignIn(ctx, "ada@example.com", "wrong")
	assert.True(t, repository.IsKind(err, repository.KindUnauthorized))
	assert.Nil(t, f.CurrentUser(), "failed sign-in must not establish a session")

	_, err = f.SignIn(ctx, "nobody@example.com", "secret")
	assert.True(t, repository.IsKind(err, repository.KindUnauthorized))
}

func TestAuthFakeDuplicateSignUp(t *testing.T) {
	f := NewAuthFake()
	ctx := context.Background()
	_, err := f.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	_, err = f.SignUp(ctx, "ada@example.com", "other")
	assert.True(t, repository.IsKind(err, repository.KindValidationFailed))
}

func TestAuthFakeSignOutClearsSessionEvenUnderFault(t *testing.T) {
	f := NewAuthFake()
	ctx := context.Background()
	_, err := f.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	boom := errors.New("network down")
	f.FailWith(boom)
	require.ErrorIs(t, f.SignOut(ctx), boom)
	assert.Nil(t, f.CurrentUser(), "local session is cleared regardless of the fault")
}

func TestAuthFakeDeleteAccountUnderFaultKeepsAccount(t *testing.T) {
	f := NewAuthFake()
	ctx := context.Background()
	_, err := f.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	boom := errors.New("backend down")
	f.FailWith(boom)
	require.ErrorIs(t, f.DeleteAccount(ctx), boom)
	assert.Nil(t, f.CurrentUser(), "session is cleared even when the backend fails")

	f.FailWith(nil)
	_, err = f.SignIn(ctx, "ada@example.com", "secret")
	require.NoError(t, err, "account survives a faulted delete")
}

func TestAuthFakeDeleteAccountRemovesAccount(t *testing.T) {
	f := NewAuthFake()
	ctx := context.Background()
	_, err := f.SignUp(ctx, "ada@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, f.DeleteAccount(ctx))
	assert.Nil(t, f.CurrentUser())

	_, err = f.SignIn(ctx, "ada@example.com", "secret")
	assert.True(t, repository.IsKind(err, repository.KindUnauthorized))
}

func TestAuthFakeCurrentUserIsCopy(t *testing.T) {
	f := NewAuthFake()
	_, err := f.SignUp(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	cur := f.CurrentUser()
	cur.Email = "evil@example.com"
	assert.Equal(t, "ada@example.com", f.CurrentUser().Email)
}

func TestAuthFakeResetClearsEverything(t *testing.T) {
	f := NewAuthFake()
	ctx := context.Background()
	_, _ = f.SignUp(ctx, "ada@example.com", "secret")
	f.FailWith(errors.New("x"))

	f.Reset()
	assert.Zero(t, f.CallCount("SignUp"))
	assert.Nil(t, f.CurrentUser())

	_, err := f.SignIn(ctx, "ada@example.com", "secret")
	assert.True(t, repository.IsKind(err, repository.KindUnauthorized), "accounts are gone after reset")
}

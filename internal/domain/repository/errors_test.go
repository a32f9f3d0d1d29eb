package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("item x")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	assert.Equal(t, KindUnspecified, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnspecified, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading collection: %w", NotFound("collection c1"))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindUnavailable))
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(KindUnavailable, "get items", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get items")
	assert.Contains(t, err.Error(), "connection refused")
}

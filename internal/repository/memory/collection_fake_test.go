package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

func TestCollectionFakeCRUD(t *testing.T) {
	f := NewCollectionFake()
	ctx := context.Background()

	c := entity.NewCollection("u1", "Cafes")
	c.Tags = []string{"coffee"}
	require.NoError(t, f.CreateCollection(ctx, c))

	got, err := f.GetCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, *c, *got)

	got.Name = "Best Cafes"
	got.Touch()
	require.NoError(t, f.UpdateCollection(ctx, got))
	again, err := f.GetCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Best Cafes", again.Name)

	require.NoError(t, f.DeleteCollection(ctx, c.ID))
	_, err = f.GetCollection(ctx, c.ID)
	assert.True(t, repository.IsKind(err, repository.KindNotFound))
	require.NoError(t, f.DeleteCollection(ctx, c.ID), "delete stays idempotent")
}

func TestCollectionFakeScopedByUser(t *testing.T) {
	f := NewCollectionFake()
	ctx := context.Background()
	f.Seed(*entity.NewCollection("u1", "mine"), *entity.NewCollection("u2", "theirs"))

	got, err := f.GetCollections(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Name)

	empty, err := f.GetCollections(ctx, "u3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCollectionFakeFaultPreservesStore(t *testing.T) {
	f := NewCollectionFake()
	ctx := context.Background()
	c := entity.NewCollection("u1", "Cafes")
	require.NoError(t, f.CreateCollection(ctx, c))

	boom := errors.New("down")
	f.FailWith(boom)
	require.ErrorIs(t, f.DeleteCollection(ctx, c.ID), boom)
	assert.Equal(t, 1, f.CallCount("DeleteCollection"))

	f.FailWith(nil)
	_, err := f.GetCollection(ctx, c.ID)
	require.NoError(t, err, "faulted delete must not remove the collection")
}

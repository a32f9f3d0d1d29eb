package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

func TestItemFakeCreateGetRoundTrip(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()

	it := entity.NewItem("u1", "c1", "Corner Roasters")
	it.Tags = []string{"coffee"}
	it.CustomFields = map[string]entity.CustomFieldValue{
		"score": entity.NumberValue(4.5),
	}
	it.Location = &entity.Location{Latitude: 51.5, Longitude: -0.1, Label: "London"}

	require.NoError(t, f.CreateItem(ctx, it))
	got, err := f.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, *it, *got)

	// the stored copy is isolated from later caller mutation
	got.Tags[0] = "tea"
	again, err := f.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"coffee"}, again.Tags)
}

func TestItemFakeGetAbsentIsNotFound(t *testing.T) {
	f := NewItemFake()
	_, err := f.GetItem(context.Background(), "missing")
	assert.True(t, repository.IsKind(err, repository.KindNotFound))
}

func TestItemFakeDeleteIdempotent(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	it := entity.NewItem("u1", "c1", "x")
	require.NoError(t, f.CreateItem(ctx, it))

	require.NoError(t, f.DeleteItem(ctx, it.ID))
	require.NoError(t, f.DeleteItem(ctx, it.ID), "second delete is a no-op")
	assert.Equal(t, 2, f.CallCount("DeleteItem"))
}

func TestItemFakeUpdateStoresRecordVerbatim(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	it := entity.NewItem("u1", "c1", "x")
	require.NoError(t, f.CreateItem(ctx, it))

	// whole-record replacement: the backend stores exactly what the
	// caller prepared, timestamps included
	stamp := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	it.Name = "y"
	it.UpdatedAt = stamp
	require.NoError(t, f.UpdateItem(ctx, it))

	got, err := f.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "y", got.Name)
	assert.True(t, got.UpdatedAt.Equal(stamp))
}

func TestItemFakeUpdateAbsentIsNoOp(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	ghost := entity.NewItem("u1", "c1", "ghost")
	require.NoError(t, f.UpdateItem(ctx, ghost))

	items, err := f.GetItems(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items, "update of an absent id must not insert")
}

func TestItemFakeSearchCaseInsensitiveScoped(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()

	mine := []*entity.Item{
		entity.NewItem("u1", "c1", "Coffee Mug"),
		entity.NewItem("u1", "c1", "Tea Cup"),
		entity.NewItem("u1", "c1", "Water Bottle"),
	}
	for _, it := range mine {
		require.NoError(t, f.CreateItem(ctx, it))
	}
	other := entity.NewItem("u2", "c9", "Coffee Grinder")
	require.NoError(t, f.CreateItem(ctx, other))

	got, err := f.SearchItems(ctx, "c", "u1")
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, it := range got {
		names = append(names, it.Name)
	}
	assert.ElementsMatch(t, []string{"Coffee Mug", "Tea Cup"}, names)

	got, err = f.SearchItems(ctx, "COFFEE", "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee Mug", got[0].Name)
}

func TestItemFakeGetItemsInsertionOrder(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	names := []string{"third", "first", "second"}
	for _, n := range names {
		require.NoError(t, f.CreateItem(ctx, entity.NewItem("u1", "c1", n)))
	}
	got, err := f.GetItems(ctx, "u1")
	require.NoError(t, err)
	for i, it := range got {
		assert.Equal(t, names[i], it.Name)
	}
}

func TestItemFakeGetItemCount(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	f.Seed(
		*entity.NewItem("u1", "c1", "a"),
		*entity.NewItem("u1", "c1", "b"),
		*entity.NewItem("u1", "c2", "c"),
	)
	n, err := f.GetItemCount(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestItemFakeFaultLeavesStoreUntouched(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	boom := errors.New("backend down")
	f.FailWith(boom)

	it := entity.NewItem("u1", "c1", "x")
	err := f.CreateItem(ctx, it)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, f.CallCount("CreateItem"), "failed calls are still counted")

	f.FailWith(nil)
	items, err := f.GetItems(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items, "faulted create must not mutate the store")
}

func TestItemFakeRecordsArgs(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	_, _ = f.SearchItems(ctx, "mug", "u1")
	assert.Equal(t, []any{"mug", "u1"}, f.LastArgs("SearchItems"))
}

func TestItemFakeDelaySuspends(t *testing.T) {
	f := NewItemFake()
	f.SetDelay(100 * time.Millisecond)

	start := time.Now()
	_, err := f.GetItems(context.Background(), "u1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestItemFakeDelayHonorsContext(t *testing.T) {
	f := NewItemFake()
	f.SetDelay(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := f.GetItems(ctx, "u1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestItemFakeReset(t *testing.T) {
	f := NewItemFake()
	ctx := context.Background()
	f.FailWith(errors.New("x"))
	f.SetDelay(time.Millisecond)
	_ = f.CreateItem(ctx, entity.NewItem("u1", "c1", "a"))

	f.Reset()
	assert.Zero(t, f.CallCount("CreateItem"))
	assert.Nil(t, f.LastArgs("CreateItem"))

	items, err := f.GetItems(ctx, "u1")
	require.NoError(t, err, "reset clears the injected fault")
	assert.Empty(t, items)
}

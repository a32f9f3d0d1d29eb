package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/repository/memory"
)

func newCatalogFixture() (*CatalogService, *memory.CollectionFake, *memory.ItemFake) {
	cols := memory.NewCollectionFake()
	items := memory.NewItemFake()
	svc := NewCatalogService(cols, items, nil, nil, "")
	return svc, cols, items
}

func TestCreateItemMaintainsItemCount(t *testing.T) {
	svc, cols, _ := newCatalogFixture()
	ctx := context.Background()

	col, err := svc.CreateCollection(ctx, "u1", CreateCollectionInput{Name: "Cafes"})
	require.NoError(t, err)
	require.Zero(t, col.ItemCount)

	_, err = svc.CreateItem(ctx, "u1", col.ID, CreateItemInput{Name: "Corner Roasters"})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, "u1", col.ID, CreateItemInput{Name: "Harbor Espresso"})
	require.NoError(t, err)

	got, err := cols.GetCollection(ctx, col.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ItemCount)
}

func TestDeleteItemMaintainsItemCount(t *testing.T) {
	svc, cols, _ := newCatalogFixture()
	ctx := context.Background()

	col, err := svc.CreateCollection(ctx, "u1", CreateCollectionInput{Name: "Cafes"})
	require.NoError(t, err)
	it, err := svc.CreateItem(ctx, "u1", col.ID, CreateItemInput{Name: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, it.ID))
	got, err := cols.GetCollection(ctx, col.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ItemCount)
}

func TestDeleteItemAbsentIsNoOp(t *testing.T) {
	svc, _, items := newCatalogFixture()
	require.NoError(t, svc.DeleteItem(context.Background(), "missing"))
	assert.Zero(t, items.CallCount("DeleteItem"), "nothing to delete, nothing deleted")
}

func TestUpdateItemAppliesPartialInput(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	ctx := context.Background()

	col, err := svc.CreateCollection(ctx, "u1", CreateCollectionInput{Name: "Cafes"})
	require.NoError(t, err)
	it, err := svc.CreateItem(ctx, "u1", col.ID, CreateItemInput{
		Name:        "Corner Roasters",
		Description: "pour over",
		Tags:        []string{"coffee"},
	})
	require.NoError(t, err)

	fav := true
	name := "Corner Roasters (new location)"
	updated, err := svc.UpdateItem(ctx, it.ID, UpdateItemInput{Name: &name, Favorite: &fav})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.True(t, updated.Favorite)
	assert.Equal(t, "pour over", updated.Description, "untouched fields survive")
	assert.Equal(t, []string{"coffee"}, updated.Tags)
	assert.True(t, updated.UpdatedAt.After(it.UpdatedAt) || updated.UpdatedAt.Equal(it.UpdatedAt))
}

func TestCreateItemSurfacesRepositoryFault(t *testing.T) {
	svc, _, items := newCatalogFixture()
	ctx := context.Background()
	boom := errors.New("backend down")
	items.FailWith(boom)

	_, err := svc.CreateItem(ctx, "u1", "c1", CreateItemInput{Name: "x"})
	require.ErrorIs(t, err, boom)
}

func TestSearchItemsDelegates(t *testing.T) {
	svc, _, items := newCatalogFixture()
	ctx := context.Background()
	items.Seed(*entity.NewItem("u1", "c1", "Coffee Mug"), *entity.NewItem("u1", "c1", "Water Bottle"))

	got, err := svc.SearchItems(ctx, "coffee", "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee Mug", got[0].Name)
	assert.Equal(t, []any{"coffee", "u1"}, items.LastArgs("SearchItems"))
}

func TestUpdateCollectionPartial(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	ctx := context.Background()
	col, err := svc.CreateCollection(ctx, "u1", CreateCollectionInput{Name: "Cafes", IsPublic: false})
	require.NoError(t, err)

	pub := true
	updated, err := svc.UpdateCollection(ctx, col.ID, UpdateCollectionInput{IsPublic: &pub})
	require.NoError(t, err)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, "Cafes", updated.Name)
}

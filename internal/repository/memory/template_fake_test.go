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

func seedTemplate(creator, name string, public bool, downloads int) entity.Template {
	t := entity.NewTemplate(creator, name, "", "misc")
	t.IsPublic = public
	t.Downloads = downloads
	return *t
}

func TestTemplateFakeFeaturedRanking(t *testing.T) {
	f := NewTemplateFake()
	ctx := context.Background()

	a := seedTemplate("u1", "A", true, 5)
	b := seedTemplate("u1", "B", true, 50)
	c := seedTemplate("u1", "C", false, 10)
	f.Seed(a, b, c)

	got, err := f.GetFeaturedTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2, "private templates are never featured")
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
}

func TestTemplateFakeFeaturedTieKeepsInsertionOrder(t *testing.T) {
	f := NewTemplateFake()
	first := seedTemplate("u1", "first", true, 7)
	second := seedTemplate("u1", "second", true, 7)
	f.Seed(first, second)

	got, err := f.GetFeaturedTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
}

func TestTemplateFakeSearch(t *testing.T) {
	f := NewTemplateFake()
	ctx := context.Background()

	coffee := entity.NewTemplate("u1", "Coffee Shops", "", "food_drink")
	books := entity.NewTemplate("u1", "Book Log", "", "media")
	brew := entity.NewTemplate("u2", "Home Brew Coffee", "", "hobby")
	f.Seed(*coffee, *books, *brew)

	got, err := f.SearchTemplates(ctx, "coffee", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = f.SearchTemplates(ctx, "coffee", "hobby")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Home Brew Coffee", got[0].Name)
}

func TestTemplateFakeIncrementDownloads(t *testing.T) {
	f := NewTemplateFake()
	ctx := context.Background()
	tmpl := seedTemplate("u1", "A", true, 0)
	f.Seed(tmpl)

	require.NoError(t, f.IncrementDownloads(ctx, tmpl.ID))
	require.NoError(t, f.IncrementDownloads(ctx, tmpl.ID))

	got, err := f.GetTemplate(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Downloads)

	err = f.IncrementDownloads(ctx, "missing")
	assert.True(t, repository.IsKind(err, repository.KindNotFound))
}

func TestTemplateFakeFaultCountsWithoutMutation(t *testing.T) {
	f := NewTemplateFake()
	ctx := context.Background()
	tmpl := seedTemplate("u1", "A", true, 0)
	f.Seed(tmpl)

	boom := errors.New("backend down")
	f.FailWith(boom)
	require.ErrorIs(t, f.IncrementDownloads(ctx, tmpl.ID), boom)
	assert.Equal(t, 1, f.CallCount("IncrementDownloads"))

	f.FailWith(nil)
	got, err := f.GetTemplate(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Downloads)
}

func TestTemplateFakeGetTemplatesScopedByCreator(t *testing.T) {
	f := NewTemplateFake()
	f.Seed(seedTemplate("u1", "mine", false, 0), seedTemplate("u2", "theirs", false, 0))

	got, err := f.GetTemplates(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Name)
}

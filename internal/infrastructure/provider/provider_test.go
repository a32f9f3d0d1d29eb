package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
	"github.com/philgetzen/favorites-tracker-sub003/internal/repository/memory"
)

func fakeBackedProvider(counts map[string]int) *Provider {
	return &Provider{
		newAuth: func() repository.AuthRepository {
			counts["auth"]++
			return memory.NewAuthFake()
		},
		newUsers: func() repository.UserRepository {
			counts["users"]++
			return memory.NewUserFake()
		},
		newCollections: func() repository.CollectionRepository {
			counts["collections"]++
			return memory.NewCollectionFake()
		},
		newItems: func() repository.ItemRepository {
			counts["items"]++
			return memory.NewItemFake()
		},
		newTemplates: func() repository.TemplateRepository {
			counts["templates"]++
			return memory.NewTemplateFake()
		},
		newStorage: func() repository.StorageRepository {
			counts["storage"]++
			return memory.NewStorageFake()
		},
	}
}

func TestProviderIsLazy(t *testing.T) {
	counts := map[string]int{}
	p := fakeBackedProvider(counts)

	assert.Empty(t, counts, "nothing constructed before first access")

	_ = p.Items()
	assert.Equal(t, 1, counts["items"])
	assert.Zero(t, counts["auth"], "untouched repositories stay unconstructed")
}

func TestProviderReturnsSameInstance(t *testing.T) {
	counts := map[string]int{}
	p := fakeBackedProvider(counts)

	a := p.Templates()
	b := p.Templates()
	assert.Same(t, a, b)
	assert.Equal(t, 1, counts["templates"])

	// every accessor memoizes independently
	_ = p.Auth()
	_ = p.Users()
	_ = p.Collections()
	_ = p.Storage()
	_ = p.Auth()
	for name, n := range counts {
		assert.Equal(t, 1, n, "factory for %s ran once", name)
	}
}

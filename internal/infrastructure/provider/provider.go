// Package provider owns one lazily-constructed concrete implementation per
// repository contract. It is the seam between the abstract contracts and the
// backend clients resolved from the container.
package provider

import (
	"sync"

	"cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philgetzen/favorites-tracker-sub003/config"
	"github.com/philgetzen/favorites-tracker-sub003/internal/container"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
	"github.com/philgetzen/favorites-tracker-sub003/internal/infrastructure/gcs"
	"github.com/philgetzen/favorites-tracker-sub003/internal/infrastructure/postgres"
)

// Provider constructs each repository on first access and reuses it
// afterwards. Construction is only idempotent under the container's
// single-init-path discipline.
type Provider struct {
	authOnce        sync.Once
	auth            repository.AuthRepository
	usersOnce       sync.Once
	users           repository.UserRepository
	collectionsOnce sync.Once
	collections     repository.CollectionRepository
	itemsOnce       sync.Once
	items           repository.ItemRepository
	templatesOnce   sync.Once
	templates       repository.TemplateRepository
	storageOnce     sync.Once
	storage         repository.StorageRepository

	newAuth        func() repository.AuthRepository
	newUsers       func() repository.UserRepository
	newCollections func() repository.CollectionRepository
	newItems       func() repository.ItemRepository
	newTemplates   func() repository.TemplateRepository
	newStorage     func() repository.StorageRepository
}

// New builds a provider whose repositories are backed by the clients
// registered in c.
func New(c *container.Container) *Provider {
	pool := func() *pgxpool.Pool { return container.Resolve[*pgxpool.Pool](c) }
	return &Provider{
		newAuth: func() repository.AuthRepository {
			return postgres.NewAuthRepository(pool())
		},
		newUsers: func() repository.UserRepository {
			return postgres.NewUserRepository(pool())
		},
		newCollections: func() repository.CollectionRepository {
			return postgres.NewCollectionRepository(pool())
		},
		newItems: func() repository.ItemRepository {
			return postgres.NewItemRepository(pool())
		},
		newTemplates: func() repository.TemplateRepository {
			return postgres.NewTemplateRepository(pool())
		},
		newStorage: func() repository.StorageRepository {
			client := container.Resolve[*storage.Client](c)
			cfg := container.Resolve[*config.Config](c)
			return gcs.NewStorageRepository(client, cfg.GCSBucket)
		},
	}
}

var (
	sharedOnce sync.Once
	shared     *Provider
)

// Shared returns the process-wide provider wired from the default container.
func Shared() *Provider {
	sharedOnce.Do(func() { shared = New(container.Default()) })
	return shared
}

func (p *Provider) Auth() repository.AuthRepository {
	p.authOnce.Do(func() { p.auth = p.newAuth() })
	return p.auth
}

func (p *Provider) Users() repository.UserRepository {
	p.usersOnce.Do(func() { p.users = p.newUsers() })
	return p.users
}

func (p *Provider) Collections() repository.CollectionRepository {
	p.collectionsOnce.Do(func() { p.collections = p.newCollections() })
	return p.collections
}

func (p *Provider) Items() repository.ItemRepository {
	p.itemsOnce.Do(func() { p.items = p.newItems() })
	return p.items
}

func (p *Provider) Templates() repository.TemplateRepository {
	p.templatesOnce.Do(func() { p.templates = p.newTemplates() })
	return p.templates
}

func (p *Provider) Storage() repository.StorageRepository {
	p.storageOnce.Do(func() { p.storage = p.newStorage() })
	return p.storage
}

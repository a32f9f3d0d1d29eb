package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	repo "github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// CatalogService covers collections and the items inside them. The cached
// ItemCount on each collection is maintained here, not in the repositories.
// Item documents are mirrored to Elasticsearch on write; the repository
// search stays authoritative.
type CatalogService struct {
	Collections  repo.CollectionRepository
	Items        repo.ItemRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESItemsIndex string
}

func NewCatalogService(collections repo.CollectionRepository, items repo.ItemRepository, logger *logrus.Logger, es *elasticsearch.Client, esItemsIndex string) *CatalogService {
	return &CatalogService{
		Collections:  collections,
		Items:        items,
		Logger:       logger,
		ES:           es,
		ESItemsIndex: esItemsIndex,
	}
}

func (s *CatalogService) ListCollections(ctx context.Context, userID string) ([]entity.Collection, error) {
	return s.Collections.GetCollections(ctx, userID)
}

func (s *CatalogService) GetCollection(ctx context.Context, id string) (*entity.Collection, error) {
	return s.Collections.GetCollection(ctx, id)
}

type CreateCollectionInput struct {
	Name        string
	Description string
	TemplateID  string
	Tags        []string
	IsPublic    bool
}

func (s *CatalogService) CreateCollection(ctx context.Context, userID string, in CreateCollectionInput) (*entity.Collection, error) {
	c := entity.NewCollection(userID, in.Name)
	c.Description = in.Description
	c.TemplateID = in.TemplateID
	if in.Tags != nil {
		c.Tags = in.Tags
	}
	c.IsPublic = in.IsPublic
	if err := s.Collections.CreateCollection(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

type UpdateCollectionInput struct {
	Name        *string
	Description *string
	Favorite    *bool
	Tags        []string
	IsPublic    *bool
}

func (s *CatalogService) UpdateCollection(ctx context.Context, id string, in UpdateCollectionInput) (*entity.Collection, error) {
	c, err := s.Collections.GetCollection(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Favorite != nil {
		c.SetFavorited(*in.Favorite)
	}
	if in.Tags != nil {
		c.SetTagList(in.Tags)
	}
	if in.IsPublic != nil {
		c.IsPublic = *in.IsPublic
	}
	c.Touch()
	if err := s.Collections.UpdateCollection(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCollection(ctx context.Context, id string) error {
	return s.Collections.DeleteCollection(ctx, id)
}

func (s *CatalogService) ListItems(ctx context.Context, userID string) ([]entity.Item, error) {
	return s.Items.GetItems(ctx, userID)
}

func (s *CatalogService) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	return s.Items.GetItem(ctx, id)
}

type CreateItemInput struct {
	Name         string
	Description  string
	ImageURLs    []string
	CustomFields map[string]entity.CustomFieldValue
	Tags         []string
	Location     *entity.Location
	Rating       *float64
}

func (s *CatalogService) CreateItem(ctx context.Context, userID, collectionID string, in CreateItemInput) (*entity.Item, error) {
	it := entity.NewItem(userID, collectionID, in.Name)
	it.Description = in.Description
	if in.ImageURLs != nil {
		it.ImageURLs = in.ImageURLs
	}
	if in.CustomFields != nil {
		it.CustomFields = in.CustomFields
	}
	if in.Tags != nil {
		it.Tags = in.Tags
	}
	it.Location = in.Location
	it.Rating = in.Rating
	if err := s.Items.CreateItem(ctx, it); err != nil {
		return nil, err
	}
	s.refreshItemCount(ctx, collectionID)
	_ = s.indexItem(ctx, it)
	return it, nil
}

type UpdateItemInput struct {
	Name         *string
	Description  *string
	ImageURLs    []string
	CustomFields map[string]entity.CustomFieldValue
	Favorite     *bool
	Tags         []string
	Location     *entity.Location
	Rating       *float64
}

func (s *CatalogService) UpdateItem(ctx context.Context, id string, in UpdateItemInput) (*entity.Item, error) {
	it, err := s.Items.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.ImageURLs != nil {
		it.ImageURLs = in.ImageURLs
	}
	if in.CustomFields != nil {
		it.CustomFields = in.CustomFields
	}
	if in.Favorite != nil {
		it.SetFavorited(*in.Favorite)
	}
	if in.Tags != nil {
		it.SetTagList(in.Tags)
	}
	if in.Location != nil {
		it.Location = in.Location
	}
	if in.Rating != nil {
		it.Rating = in.Rating
	}
	it.Touch()
	if err := s.Items.UpdateItem(ctx, it); err != nil {
		return nil, err
	}
	_ = s.indexItem(ctx, it)
	return it, nil
}

// DeleteItem removes the item and refreshes the owning collection's cached
// count. Deleting an absent id is a no-op.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	it, err := s.Items.GetItem(ctx, id)
	if err != nil {
		if repo.IsKind(err, repo.KindNotFound) {
			return nil
		}
		return err
	}
	if err := s.Items.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.refreshItemCount(ctx, it.CollectionID)
	s.deleteItemDoc(ctx, id)
	return nil
}

func (s *CatalogService) SearchItems(ctx context.Context, query, userID string) ([]entity.Item, error) {
	return s.Items.SearchItems(ctx, query, userID)
}

// refreshItemCount re-reads the authoritative count and stores it on the
// collection. Failures are logged; the cache catches up on the next write.
func (s *CatalogService) refreshItemCount(ctx context.Context, collectionID string) {
	n, err := s.Items.GetItemCount(ctx, collectionID)
	if err != nil {
		s.warn(err, "collection_id", collectionID, "refresh item count failed")
		return
	}
	c, err := s.Collections.GetCollection(ctx, collectionID)
	if err != nil {
		s.warn(err, "collection_id", collectionID, "refresh item count failed")
		return
	}
	if c.ItemCount == n {
		return
	}
	c.ItemCount = n
	c.Touch()
	if err := s.Collections.UpdateCollection(ctx, c); err != nil {
		s.warn(err, "collection_id", collectionID, "refresh item count failed")
	}
}

func (s *CatalogService) warn(err error, key, val, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField(key, val).Warn(msg)
	}
}

func (s *CatalogService) indexItem(ctx context.Context, it *entity.Item) error {
	if s.ES == nil || s.ESItemsIndex == "" {
		return nil
	}
	fields := make(map[string]string, len(it.CustomFields))
	for k, v := range it.CustomFields {
		fields[k] = v.String()
	}
	doc := map[string]any{
		"id":            it.ID,
		"user_id":       it.UserID,
		"collection_id": it.CollectionID,
		"name":          it.Name,
		"description":   it.Description,
		"tags":          it.Tags,
		"custom_fields": fields,
		"created_at":    it.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":    it.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESItemsIndex, DocumentID: it.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.warn(err, "item_id", it.ID, "es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.warn(nil, "item_id", it.ID, "es index response error "+res.Status())
	}
	return nil
}

func (s *CatalogService) deleteItemDoc(ctx context.Context, id string) {
	if s.ES == nil || s.ESItemsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESItemsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.warn(err, "item_id", id, "es delete failed")
		return
	}
	_ = res.Body.Close()
}

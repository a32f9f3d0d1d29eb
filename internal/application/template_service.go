package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	repo "github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// ErrPremiumRequired is returned when a free user tries to use a premium
// template.
var ErrPremiumRequired = errors.New("premium subscription required")

// TemplateService manages reusable item templates: authoring, discovery,
// and the download counter behind the featured ranking.
type TemplateService struct {
	Templates        repo.TemplateRepository
	Users            repo.UserRepository
	Logger           *logrus.Logger
	ES               *elasticsearch.Client
	ESTemplatesIndex string
}

func NewTemplateService(templates repo.TemplateRepository, users repo.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esTemplatesIndex string) *TemplateService {
	return &TemplateService{
		Templates:        templates,
		Users:            users,
		Logger:           logger,
		ES:               es,
		ESTemplatesIndex: esTemplatesIndex,
	}
}

func (s *TemplateService) ListTemplates(ctx context.Context, creatorID string) ([]entity.Template, error) {
	return s.Templates.GetTemplates(ctx, creatorID)
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*entity.Template, error) {
	return s.Templates.GetTemplate(ctx, id)
}

type CreateTemplateInput struct {
	Name        string
	Description string
	Category    string
	Components  []entity.ComponentDefinition
	PreviewURL  string
	Tags        []string
	IsPublic    bool
	IsPremium   bool
}

func (s *TemplateService) CreateTemplate(ctx context.Context, creatorID string, in CreateTemplateInput) (*entity.Template, error) {
	t := entity.NewTemplate(creatorID, in.Name, in.Description, in.Category)
	if in.Components != nil {
		t.Components = in.Components
	}
	t.PreviewURL = in.PreviewURL
	if in.Tags != nil {
		t.Tags = in.Tags
	}
	t.IsPublic = in.IsPublic
	t.IsPremium = in.IsPremium
	if err := s.Templates.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}
	_ = s.indexTemplate(ctx, t)
	return t, nil
}

type UpdateTemplateInput struct {
	Name        *string
	Description *string
	Category    *string
	Components  []entity.ComponentDefinition
	PreviewURL  *string
	Favorite    *bool
	Tags        []string
	IsPublic    *bool
	IsPremium   *bool
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, in UpdateTemplateInput) (*entity.Template, error) {
	t, err := s.Templates.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Components != nil {
		t.Components = in.Components
	}
	if in.PreviewURL != nil {
		t.PreviewURL = *in.PreviewURL
	}
	if in.Favorite != nil {
		t.SetFavorited(*in.Favorite)
	}
	if in.Tags != nil {
		t.SetTagList(in.Tags)
	}
	if in.IsPublic != nil {
		t.IsPublic = *in.IsPublic
	}
	if in.IsPremium != nil {
		t.IsPremium = *in.IsPremium
	}
	t.Touch()
	if err := s.Templates.UpdateTemplate(ctx, t); err != nil {
		return nil, err
	}
	_ = s.indexTemplate(ctx, t)
	return t, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.Templates.DeleteTemplate(ctx, id); err != nil {
		return err
	}
	s.deleteTemplateDoc(ctx, id)
	return nil
}

func (s *TemplateService) SearchTemplates(ctx context.Context, query, category string) ([]entity.Template, error) {
	return s.Templates.SearchTemplates(ctx, query, category)
}

func (s *TemplateService) FeaturedTemplates(ctx context.Context) ([]entity.Template, error) {
	return s.Templates.GetFeaturedTemplates(ctx)
}

// UseTemplate records a download of the template by userID and returns it.
// Premium templates require an active subscription unless the user is the
// creator.
func (s *TemplateService) UseTemplate(ctx context.Context, id, userID string) (*entity.Template, error) {
	t, err := s.Templates.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.IsPremium && t.CreatorID != userID {
		p, pErr := s.Users.GetProfile(ctx, userID)
		if pErr != nil || !p.HasActiveSubscription(time.Now().UTC()) {
			return nil, ErrPremiumRequired
		}
	}
	if err := s.Templates.IncrementDownloads(ctx, id); err != nil {
		return nil, err
	}
	t.Downloads++
	return t, nil
}

func (s *TemplateService) indexTemplate(ctx context.Context, t *entity.Template) error {
	if s.ES == nil || s.ESTemplatesIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          t.ID,
		"creator_id":  t.CreatorID,
		"name":        t.Name,
		"description": t.Description,
		"category":    t.Category,
		"tags":        t.Tags,
		"is_public":   t.IsPublic,
		"is_premium":  t.IsPremium,
		"downloads":   t.Downloads,
		"created_at":  t.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  t.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESTemplatesIndex, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("template_id", t.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("template_id", t.ID).Warn("es index response error")
	}
	return nil
}

func (s *TemplateService) deleteTemplateDoc(ctx context.Context, id string) {
	if s.ES == nil || s.ESTemplatesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESTemplatesIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("template_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// TemplateFake is an in-memory TemplateRepository.
type TemplateFake struct {
	fakeCore
	storeMu   sync.Mutex
	templates []entity.Template
}

func NewTemplateFake() *TemplateFake { return &TemplateFake{} }

var _ repository.TemplateRepository = (*TemplateFake)(nil)

func (f *TemplateFake) Reset() {
	f.storeMu.Lock()
	f.templates = nil
	f.storeMu.Unlock()
	f.resetCore()
}

func (f *TemplateFake) Seed(ts ...entity.Template) {
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, t := range ts {
		f.templates = append(f.templates, cloneTemplate(t))
	}
}

func (f *TemplateFake) GetTemplates(ctx context.Context, creatorID string) ([]entity.Template, error) {
	if err := f.begin(ctx, "GetTemplates", creatorID); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	out := []entity.Template{}
	for _, t := range f.templates {
		if t.CreatorID == creatorID {
			out = append(out, cloneTemplate(t))
		}
	}
	return out, nil
}

func (f *TemplateFake) GetTemplate(ctx context.Context, id string) (*entity.Template, error) {
	if err := f.begin(ctx, "GetTemplate", id); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for _, t := range f.templates {
		if t.ID == id {
			tt := cloneTemplate(t)
			return &tt, nil
		}
	}
	return nil, repository.NotFound("template " + id)
}

func (f *TemplateFake) CreateTemplate(ctx context.Context, t *entity.Template) error {
	if err := f.begin(ctx, "CreateTemplate", t); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	f.templates = append(f.templates, cloneTemplate(*t))
	return nil
}

func (f *TemplateFake) UpdateTemplate(ctx context.Context, t *entity.Template) error {
	if err := f.begin(ctx, "UpdateTemplate", t); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.templates {
		if f.templates[i].ID == t.ID {
			f.templates[i] = cloneTemplate(*t)
			return nil
		}
	}
	return nil
}

func (f *TemplateFake) DeleteTemplate(ctx context.Context, id string) error {
	if err := f.begin(ctx, "DeleteTemplate", id); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.templates {
		if f.templates[i].ID == id {
			f.templates = append(f.templates[:i], f.templates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *TemplateFake) SearchTemplates(ctx context.Context, query, category string) ([]entity.Template, error) {
	if err := f.begin(ctx, "SearchTemplates", query, category); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	q := strings.ToLower(query)
	out := []entity.Template{}
	for _, t := range f.templates {
		if !strings.Contains(strings.ToLower(t.Name), q) {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, cloneTemplate(t))
	}
	return out, nil
}

// GetFeaturedTemplates returns public templates by descending download
// count; ties keep insertion order.
func (f *TemplateFake) GetFeaturedTemplates(ctx context.Context) ([]entity.Template, error) {
	if err := f.begin(ctx, "GetFeaturedTemplates"); err != nil {
		return nil, err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	out := []entity.Template{}
	for _, t := range f.templates {
		if t.IsPublic {
			out = append(out, cloneTemplate(t))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Downloads > out[j].Downloads
	})
	return out, nil
}

func (f *TemplateFake) IncrementDownloads(ctx context.Context, id string) error {
	if err := f.begin(ctx, "IncrementDownloads", id); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	for i := range f.templates {
		if f.templates[i].ID == id {
			f.templates[i].Downloads++
			return nil
		}
	}
	return repository.NotFound("template " + id)
}

func cloneTemplate(t entity.Template) entity.Template {
	tt := t
	tt.Tags = append([]string(nil), t.Tags...)
	tt.Components = append([]entity.ComponentDefinition(nil), t.Components...)
	if t.Rating != nil {
		r := *t.Rating
		tt.Rating = &r
	}
	return tt
}

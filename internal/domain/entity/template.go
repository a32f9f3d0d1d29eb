package entity

import (
	"time"

	"github.com/google/uuid"
)

// ComponentType is the closed set of form components a template may declare.
type ComponentType string

const (
	ComponentTextField ComponentType = "text_field"
	ComponentTextArea  ComponentType = "text_area"
	ComponentNumber    ComponentType = "number_field"
	ComponentDate      ComponentType = "date_field"
	ComponentToggle    ComponentType = "toggle"
	ComponentPicker    ComponentType = "picker"
	ComponentRating    ComponentType = "rating"
	ComponentImage     ComponentType = "image"
	ComponentLocation  ComponentType = "location"
)

// ValidationRule describes constraints on a component's value. It is a pure
// description; enforcement is the consumer's responsibility.
type ValidationRule struct {
	MinLength *int     `json:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty"`
	MinValue  *float64 `json:"min_value,omitempty"`
	MaxValue  *float64 `json:"max_value,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Required  bool     `json:"required"`
}

// ComponentDefinition is one configurable field in a template form.
type ComponentDefinition struct {
	ID           string            `json:"id"`
	Type         ComponentType     `json:"type"`
	Label        string            `json:"label"`
	Required     bool              `json:"required"`
	DefaultValue *CustomFieldValue `json:"default_value,omitempty"`
	Options      []string          `json:"options,omitempty"`
	Validation   *ValidationRule   `json:"validation,omitempty"`
}

func NewComponentDefinition(t ComponentType, label string) ComponentDefinition {
	return ComponentDefinition{ID: uuid.NewString(), Type: t, Label: label}
}

// Template is a reusable item form definition created by a user.
type Template struct {
	ID          string
	CreatorID   string
	Name        string
	Description string
	Category    string
	Components  []ComponentDefinition
	PreviewURL  string
	Favorite    bool
	Tags        []string
	IsPublic    bool
	IsPremium   bool
	Downloads   int
	Rating      *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewTemplate(creatorID, name, description, category string) *Template {
	now := time.Now().UTC()
	return &Template{
		ID:          uuid.NewString(),
		CreatorID:   creatorID,
		Name:        name,
		Description: description,
		Category:    category,
		Components:  []ComponentDefinition{},
		Tags:        []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t *Template) Favorited() bool          { return t.Favorite }
func (t *Template) SetFavorited(v bool)      { t.Favorite = v }
func (t *Template) TagList() []string        { return t.Tags }
func (t *Template) SetTagList(tags []string) { t.Tags = tags }

func (t *Template) Touch() { t.UpdatedAt = time.Now().UTC() }

var (
	_ Favoritable = (*Template)(nil)
	_ Taggable    = (*Template)(nil)
)

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection groups a user's favorite items. TemplateID is a lookup-only
// reference; ItemCount is a cached count maintained by the catalog use case
// and is not authoritative.
type Collection struct {
	ID          string
	UserID      string
	Name        string
	Description string
	TemplateID  string
	ItemCount   int
	Favorite    bool
	Tags        []string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCollection builds an empty, private, non-favorite collection.
func NewCollection(userID, name string) *Collection {
	now := time.Now().UTC()
	return &Collection{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Collection) Favorited() bool          { return c.Favorite }
func (c *Collection) SetFavorited(v bool)      { c.Favorite = v }
func (c *Collection) TagList() []string        { return c.Tags }
func (c *Collection) SetTagList(tags []string) { c.Tags = tags }

func (c *Collection) Touch() { c.UpdatedAt = time.Now().UTC() }

var (
	_ Favoritable = (*Collection)(nil)
	_ Taggable    = (*Collection)(nil)
)

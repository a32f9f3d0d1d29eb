package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single favorite inside a collection. CustomFields maps a
// template component key to the value the user filled in.
type Item struct {
	ID           string
	UserID       string
	CollectionID string
	Name         string
	Description  string
	ImageURLs    []string
	CustomFields map[string]CustomFieldValue
	Favorite     bool
	Tags         []string
	Location     *Location
	Rating       *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

func NewItem(userID, collectionID, name string) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:           uuid.NewString(),
		UserID:       userID,
		CollectionID: collectionID,
		Name:         name,
		ImageURLs:    []string{},
		CustomFields: map[string]CustomFieldValue{},
		Tags:         []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (i *Item) Favorited() bool          { return i.Favorite }
func (i *Item) SetFavorited(v bool)      { i.Favorite = v }
func (i *Item) TagList() []string        { return i.Tags }
func (i *Item) SetTagList(tags []string) { i.Tags = tags }

func (i *Item) Touch() { i.UpdatedAt = time.Now().UTC() }

var (
	_ Favoritable = (*Item)(nil)
	_ Taggable    = (*Item)(nil)
)

package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile carries the public-facing profile for a user. Its ID is
// generated independently of the owning user's id.
type UserProfile struct {
	ID           string
	UserID       string
	DisplayName  string
	Bio          string
	Preferences  UserPreferences
	Subscription *SubscriptionInfo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserPreferences struct {
	Theme         string               `json:"theme"`
	Language      string               `json:"language"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
}

type NotificationSettings struct {
	PushEnabled  bool `json:"push_enabled"`
	EmailEnabled bool `json:"email_enabled"`
	Reminders    bool `json:"reminders"`
}

type PrivacySettings struct {
	ProfilePublic      bool `json:"profile_public"`
	CollectionsVisible bool `json:"collections_visible"`
}

// SubscriptionInfo is subscription state carried as data; billing itself is
// handled elsewhere.
type SubscriptionInfo struct {
	Plan      string    `json:"plan"`
	IsActive  bool      `json:"is_active"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DefaultPreferences are applied to every new profile.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:    "system",
		Language: "en",
		Notifications: NotificationSettings{
			PushEnabled:  true,
			EmailEnabled: true,
			Reminders:    false,
		},
		Privacy: PrivacySettings{
			ProfilePublic:      false,
			CollectionsVisible: true,
		},
	}
}

func NewUserProfile(userID, displayName string) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		ID:          uuid.NewString(),
		UserID:      userID,
		DisplayName: displayName,
		Preferences: DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasActiveSubscription reports whether the profile currently grants premium
// features.
func (p *UserProfile) HasActiveSubscription(now time.Time) bool {
	return p.Subscription != nil && p.Subscription.IsActive && p.Subscription.ExpiresAt.After(now)
}

func (p *UserProfile) Touch() { p.UpdatedAt = time.Now().UTC() }

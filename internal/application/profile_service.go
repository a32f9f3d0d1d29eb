package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	repo "github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

// ProfileService owns profile reads and writes plus avatar uploads.
type ProfileService struct {
	Users   repo.UserRepository
	Storage repo.StorageRepository
	Redis   *redis.Client
	Logger  *logrus.Logger
}

func NewProfileService(users repo.UserRepository, storage repo.StorageRepository, rdb *redis.Client, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Users: users, Storage: storage, Redis: rdb, Logger: logger}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return s.Users.GetProfile(ctx, userID)
}

type UpdateProfileInput struct {
	DisplayName  string
	Bio          *string
	Preferences  *entity.UserPreferences
	Subscription *entity.SubscriptionInfo
}

// UpdateProfile applies the provided fields and keeps the cached session
// name in step with the profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.UserProfile, error) {
	p, err := s.Users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.DisplayName != "" {
		p.DisplayName = in.DisplayName
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Preferences != nil {
		p.Preferences = *in.Preferences
	}
	if in.Subscription != nil {
		p.Subscription = in.Subscription
	}
	p.Touch()
	if err := s.Users.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	if s.Redis != nil && in.DisplayName != "" {
		key := sessionKey(userID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{"name": p.DisplayName, "updated_at": nowRFC3339()})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return p, nil
}

// HasActiveSubscription reports whether the user currently holds premium
// access. A missing profile means no.
func (s *ProfileService) HasActiveSubscription(ctx context.Context, userID string) bool {
	p, err := s.Users.GetProfile(ctx, userID)
	if err != nil {
		return false
	}
	return p.HasActiveSubscription(time.Now().UTC())
}

// UploadAvatar stores the image and records its public URL on the user row.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename string) (string, error) {
	u, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", repo.WrapError(repo.KindValidationFailed, "read avatar", err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := "avatars/" + userID + "/" + uuid.NewString() + ext
	url, err := s.Storage.UploadImage(ctx, data, objectPath)
	if err != nil {
		return "", err
	}
	u.PhotoURL = url
	u.Touch()
	if err := s.Users.UpdateUser(ctx, u); err != nil {
		return "", err
	}
	if s.Redis != nil {
		s.Redis.HSet(ctx, sessionKey(userID), map[string]any{
			"photo_url":  url,
			"updated_at": nowRFC3339(),
		})
	}
	return url, nil
}

package application

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	"github.com/philgetzen/favorites-tracker-sub003/internal/repository/memory"
)

func newProfileFixture() (*ProfileService, *memory.UserFake, *memory.StorageFake) {
	users := memory.NewUserFake()
	storage := memory.NewStorageFake()
	svc := NewProfileService(users, storage, nil, nil)
	return svc, users, storage
}

func TestUpdateProfileAppliesFields(t *testing.T) {
	svc, users, _ := newProfileFixture()
	ctx := context.Background()

	p := entity.NewUserProfile("u1", "Ada")
	users.SeedProfiles(*p)

	bio := "coffee person"
	prefs := entity.DefaultPreferences()
	prefs.Theme = "dark"
	got, err := svc.UpdateProfile(ctx, "u1", UpdateProfileInput{
		DisplayName: "Ada L.",
		Bio:         &bio,
		Preferences: &prefs,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", got.DisplayName)
	assert.Equal(t, "coffee person", got.Bio)
	assert.Equal(t, "dark", got.Preferences.Theme)

	stored, err := users.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", stored.DisplayName)
}

func TestUpdateProfileMissingProfile(t *testing.T) {
	svc, _, _ := newProfileFixture()
	_, err := svc.UpdateProfile(context.Background(), "ghost", UpdateProfileInput{DisplayName: "x"})
	require.Error(t, err)
}

func TestHasActiveSubscription(t *testing.T) {
	svc, users, _ := newProfileFixture()
	ctx := context.Background()

	free := entity.NewUserProfile("free", "Free")
	pro := entity.NewUserProfile("pro", "Pro")
	pro.Subscription = &entity.SubscriptionInfo{
		Plan:      "pro",
		IsActive:  true,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	users.SeedProfiles(*free, *pro)

	assert.False(t, svc.HasActiveSubscription(ctx, "free"))
	assert.True(t, svc.HasActiveSubscription(ctx, "pro"))
	assert.False(t, svc.HasActiveSubscription(ctx, "ghost"), "missing profile means no premium")
}

func TestUploadAvatarStoresAndRecordsURL(t *testing.T) {
	svc, users, storage := newProfileFixture()
	ctx := context.Background()

	u := entity.NewUser("ada@example.com")
	users.SeedUsers(*u)

	url, err := svc.UploadAvatar(ctx, u.ID, bytes.NewReader([]byte("png-bytes")), "me.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is lowercased: %s", url)
	assert.Contains(t, url, "avatars/"+u.ID+"/")

	data, err := storage.DownloadImage(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	stored, err := users.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, url, stored.PhotoURL)
}

func TestUploadAvatarUnknownUser(t *testing.T) {
	svc, _, storage := newProfileFixture()
	_, err := svc.UploadAvatar(context.Background(), "ghost", bytes.NewReader(nil), "a.png")
	require.Error(t, err)
	assert.Zero(t, storage.CallCount("UploadImage"), "nothing uploaded for an unknown user")
}

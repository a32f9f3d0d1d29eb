package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

func TestStorageFakeUploadDownloadDelete(t *testing.T) {
	f := NewStorageFake()
	ctx := context.Background()

	url, err := f.UploadImage(ctx, []byte{0x89, 0x50, 0x4e, 0x47}, "avatars/u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, fakeStorageBase+"avatars/u1/a.png", url)

	data, err := f.DownloadImage(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)

	require.NoError(t, f.DeleteImage(ctx, "avatars/u1/a.png"))
	_, err = f.DownloadImage(ctx, url)
	assert.True(t, repository.IsKind(err, repository.KindNotFound))

	require.NoError(t, f.DeleteImage(ctx, "avatars/u1/a.png"), "delete is idempotent")
}

func TestStorageFakeStoresCopy(t *testing.T) {
	f := NewStorageFake()
	ctx := context.Background()

	buf := []byte("original")
	url, err := f.UploadImage(ctx, buf, "p")
	require.NoError(t, err)
	buf[0] = 'X'

	data, err := f.DownloadImage(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)
}

func TestStorageFakeFault(t *testing.T) {
	f := NewStorageFake()
	ctx := context.Background()
	boom := errors.New("bucket gone")
	f.FailWith(boom)

	_, err := f.UploadImage(ctx, []byte("x"), "p")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, f.CallCount("UploadImage"))

	f.FailWith(nil)
	_, err = f.DownloadImage(ctx, fakeStorageBase+"p")
	assert.True(t, repository.IsKind(err, repository.KindNotFound), "faulted upload stored nothing")
}

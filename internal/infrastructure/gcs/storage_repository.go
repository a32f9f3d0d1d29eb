// Package gcs implements the storage contract on Google Cloud Storage.
package gcs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
)

// StorageRepository stores item and avatar images in a GCS bucket and hands
// out public object URLs.
type StorageRepository struct {
	client *storage.Client
	bucket string
}

func NewStorageRepository(client *storage.Client, bucket string) *StorageRepository {
	return &StorageRepository{client: client, bucket: bucket}
}

var _ repository.StorageRepository = (*StorageRepository)(nil)

func (r *StorageRepository) UploadImage(ctx context.Context, data []byte, path string) (string, error) {
	url, err := helpers.UploadObject(ctx, r.client, r.bucket, path, contentTypeFor(path), bytes.NewReader(data))
	if err != nil {
		return "", repository.WrapError(repository.KindUnavailable, "upload image", err)
	}
	return url, nil
}

func (r *StorageRepository) DeleteImage(ctx context.Context, path string) error {
	err := r.client.Bucket(r.bucket).Object(path).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	if err != nil {
		return repository.WrapError(repository.KindUnavailable, "delete image", err)
	}
	return nil
}

func (r *StorageRepository) DownloadImage(ctx context.Context, url string) ([]byte, error) {
	path, ok := r.objectPath(url)
	if !ok {
		return nil, repository.ValidationFailed("url outside bucket: " + url)
	}
	rc, err := r.client.Bucket(r.bucket).Object(path).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, repository.NotFound("object " + path)
	}
	if err != nil {
		return nil, repository.WrapError(repository.KindUnavailable, "open image", err)
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, repository.WrapError(repository.KindUnavailable, "read image", err)
	}
	return data, nil
}

func (r *StorageRepository) objectPath(url string) (string, bool) {
	prefix := helpers.PublicURL(r.bucket, "")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func contentTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".gif"):
		return "image/gif"
	case strings.HasSuffix(path, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

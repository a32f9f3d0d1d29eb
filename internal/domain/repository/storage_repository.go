package repository

import "context"

// StorageRepository stores and retrieves image blobs by object path.
type StorageRepository interface {
	// UploadImage stores data at path and returns the absolute URL.
	UploadImage(ctx context.Context, data []byte, path string) (string, error)
	DeleteImage(ctx context.Context, path string) error
	DownloadImage(ctx context.Context, url string) ([]byte, error)
}

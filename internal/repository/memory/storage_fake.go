package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
)

const fakeStorageBase = "https://storage.favorites-tracker.test/"

// StorageFake is an in-memory StorageRepository mapping object paths to
// byte blobs.
type StorageFake struct {
	fakeCore
	storeMu sync.Mutex
	objects map[string][]byte
}

func NewStorageFake() *StorageFake {
	return &StorageFake{objects: map[string][]byte{}}
}

var _ repository.StorageRepository = (*StorageFake)(nil)

func (f *StorageFake) Reset() {
	f.storeMu.Lock()
	f.objects = map[string][]byte{}
	f.storeMu.Unlock()
	f.resetCore()
}

func (f *StorageFake) UploadImage(ctx context.Context, data []byte, path string) (string, error) {
	if err := f.begin(ctx, "UploadImage", data, path); err != nil {
		return "", err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	f.objects[path] = append([]byte(nil), data...)
	return fakeStorageBase + path, nil
}

func (f *StorageFake) DeleteImage(ctx context.Context, path string) error {
	if err := f.begin(ctx, "DeleteImage", path); err != nil {
		return err
	}
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	delete(f.objects, path)
	return nil
}

func (f *StorageFake) DownloadImage(ctx context.Context, url string) ([]byte, error) {
	if err := f.begin(ctx, "DownloadImage", url); err != nil {
		return nil, err
	}
	path := strings.TrimPrefix(url, fakeStorageBase)
	f.storeMu.Lock()
	defer f.storeMu.Unlock()
	data, ok := f.objects[path]
	if !ok {
		return nil, repository.NotFound("object " + path)
	}
	return append([]byte(nil), data...), nil
}

package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/DivyanshGarg380/Backend-Project/internal/storage"
)

// FileStore uploads a named object and returns its public URL.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
}

// MediaService moves multipart uploads into object storage. It only hands
// URLs back; persistence of those URLs is the caller's job.
type MediaService struct {
	store FileStore
}

func NewMediaService(store FileStore) *MediaService {
	return &MediaService{store: store}
}

// UploadImage stores an image upload under images/ and returns its URL.
func (s *MediaService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	return s.upload(ctx, "images", fh)
}

// UploadVideo stores a video upload under videos/ and returns its URL.
func (s *MediaService) UploadVideo(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	return s.upload(ctx, "videos", fh)
}

func (s *MediaService) upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("%w: file is required", ErrInvalidInput)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	url, err := s.store.Save(ctx, storage.ObjectKey(folder, fh.Filename), f)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return url, nil
}

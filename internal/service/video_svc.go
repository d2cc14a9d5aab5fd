package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// VideoStore is the slice of the video repository the video flows need.
type VideoStore interface {
	Create(ctx context.Context, v *model.Video) (*model.Video, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error)
	List(ctx context.Context, params model.VideoListParams, includeUnpublished bool) ([]model.VideoWithOwner, int64, error)
	Update(ctx context.Context, id uuid.UUID, title, description, thumbnailURL string) (*model.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TogglePublish(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

type VideoService struct {
	videos VideoStore
	cache  *CacheService
}

func NewVideoService(videos VideoStore, cache *CacheService) *VideoService {
	return &VideoService{videos: videos, cache: cache}
}

// Publish stores a freshly uploaded video. The media files are already in
// object storage; this records their URLs and metadata.
func (s *VideoService) Publish(ctx context.Context, ownerID uuid.UUID, title, description, videoURL, thumbnailURL string, duration float64) (*model.Video, error) {
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}
	if videoURL == "" || thumbnailURL == "" {
		return nil, fmt.Errorf("%w: video and thumbnail files are required", ErrInvalidInput)
	}

	return s.videos.Create(ctx, &model.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
		IsPublished:  true,
	})
}

// Get returns a single video. Drafts are only visible to their owner.
// Views are bumped on every fetch by a non-owner; failures there never
// fail the read.
func (s *VideoService) Get(ctx context.Context, id, viewerID uuid.UUID) (*model.VideoWithOwner, error) {
	if v, err := s.cache.GetVideo(ctx, id.String()); err == nil && v != nil {
		if !v.IsPublished && v.OwnerID != viewerID {
			return nil, fmt.Errorf("%w: video does not exist", ErrNotFound)
		}
		s.countView(ctx, v, viewerID)
		return v, nil
	}

	v, err := s.videos.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !v.IsPublished && v.OwnerID != viewerID {
		return nil, fmt.Errorf("%w: video does not exist", ErrNotFound)
	}

	if v.IsPublished {
		_ = s.cache.SetVideo(ctx, id.String(), v)
	}
	s.countView(ctx, v, viewerID)
	return v, nil
}

// List returns one page of videos. Unpublished videos appear only when the
// requester filters by their own channel.
func (s *VideoService) List(ctx context.Context, params model.VideoListParams, requesterID uuid.UUID) (model.Page[model.VideoWithOwner], error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	includeUnpublished := params.OwnerID != nil && *params.OwnerID == requesterID && requesterID != uuid.Nil

	videos, total, err := s.videos.List(ctx, params, includeUnpublished)
	if err != nil {
		return model.Page[model.VideoWithOwner]{}, err
	}
	return model.NewPage(videos, total, params.Page, params.Limit), nil
}

// Update changes a video's metadata. Only the owner may update.
func (s *VideoService) Update(ctx context.Context, id, userID uuid.UUID, title, description, thumbnailURL string) (*model.Video, error) {
	if title == "" && description == "" && thumbnailURL == "" {
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}
	if _, err := s.owned(ctx, id, userID); err != nil {
		return nil, err
	}

	v, err := s.videos.Update(ctx, id, title, description, thumbnailURL)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	_ = s.cache.InvalidateVideo(ctx, id.String())
	return v, nil
}

// Delete removes a video. Only the owner may delete.
func (s *VideoService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: video does not exist", ErrNotFound)
		}
		return err
	}
	return s.cache.InvalidateVideo(ctx, id.String())
}

// TogglePublish flips the publish state. Only the owner may toggle.
func (s *VideoService) TogglePublish(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return false, err
	}
	published, err := s.videos.TogglePublish(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	if err != nil {
		return false, err
	}
	_ = s.cache.InvalidateVideo(ctx, id.String())
	return published, nil
}

func (s *VideoService) owned(ctx context.Context, id, userID uuid.UUID) (*model.VideoWithOwner, error) {
	v, err := s.videos.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if v.OwnerID != userID {
		return nil, fmt.Errorf("%w: only the owner can modify this video", ErrForbidden)
	}
	return v, nil
}

func (s *VideoService) countView(ctx context.Context, v *model.VideoWithOwner, viewerID uuid.UUID) {
	if !v.IsPublished || v.OwnerID == viewerID {
		return
	}
	if err := s.videos.IncrementViews(ctx, v.ID); err != nil {
		log.Warn().Err(err).Str("video_id", v.ID.String()).Msg("failed to count view")
	}
}

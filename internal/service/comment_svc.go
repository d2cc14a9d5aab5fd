package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// CommentStore is the slice of the comment repository the comment flows need.
type CommentStore interface {
	Create(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*model.Comment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]model.CommentWithOwner, int64, error)
	Update(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentVideoStore verifies the target video exists and is visible.
type CommentVideoStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.VideoWithOwner, error)
}

type CommentService struct {
	comments CommentStore
	videos   CommentVideoStore
}

func NewCommentService(comments CommentStore, videos CommentVideoStore) *CommentService {
	return &CommentService{comments: comments, videos: videos}
}

// Add posts a comment on a published video.
func (s *CommentService) Add(ctx context.Context, videoID, userID uuid.UUID, content string) (*model.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if err := s.videoVisible(ctx, videoID, userID); err != nil {
		return nil, err
	}
	return s.comments.Create(ctx, videoID, userID, content)
}

// ListForVideo returns one page of a video's comments, newest first.
func (s *CommentService) ListForVideo(ctx context.Context, videoID, viewerID uuid.UUID, page, limit int) (model.Page[model.CommentWithOwner], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if err := s.videoVisible(ctx, videoID, viewerID); err != nil {
		return model.Page[model.CommentWithOwner]{}, err
	}

	comments, total, err := s.comments.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return model.Page[model.CommentWithOwner]{}, err
	}
	return model.NewPage(comments, total, page, limit), nil
}

// Update edits a comment's content. Only the author may edit.
func (s *CommentService) Update(ctx context.Context, id, userID uuid.UUID, content string) (*model.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if err := s.owned(ctx, id, userID); err != nil {
		return nil, err
	}

	c, err := s.comments.Update(ctx, id, content)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: comment does not exist", ErrNotFound)
	}
	return c, err
}

// Delete removes a comment. Only the author may delete.
func (s *CommentService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	err := s.comments.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: comment does not exist", ErrNotFound)
	}
	return err
}

func (s *CommentService) owned(ctx context.Context, id, userID uuid.UUID) error {
	c, err := s.comments.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: comment does not exist", ErrNotFound)
	}
	if err != nil {
		return err
	}
	if c.OwnerID != userID {
		return fmt.Errorf("%w: only the author can modify this comment", ErrForbidden)
	}
	return nil
}

func (s *CommentService) videoVisible(ctx context.Context, videoID, viewerID uuid.UUID) error {
	v, err := s.videos.FindByID(ctx, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !v.IsPublished && v.OwnerID != viewerID {
		return fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// TweetStore is the slice of the tweet repository the tweet flows need.
type TweetStore interface {
	Create(ctx context.Context, ownerID uuid.UUID, content string) (*model.Tweet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Tweet, error)
	Update(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TweetService struct {
	tweets TweetStore
}

func NewTweetService(tweets TweetStore) *TweetService {
	return &TweetService{tweets: tweets}
}

// Create posts a tweet.
func (s *TweetService) Create(ctx context.Context, userID uuid.UUID, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return s.tweets.Create(ctx, userID, content)
}

// ListForUser returns all of a user's tweets, newest first.
func (s *TweetService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Tweet, error) {
	tweets, err := s.tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	return tweets, nil
}

// Update edits a tweet's content. Only the author may edit.
func (s *TweetService) Update(ctx context.Context, id, userID uuid.UUID, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if err := s.owned(ctx, id, userID); err != nil {
		return nil, err
	}

	t, err := s.tweets.Update(ctx, id, content)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: tweet does not exist", ErrNotFound)
	}
	return t, err
}

// Delete removes a tweet. Only the author may delete.
func (s *TweetService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	err := s.tweets.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: tweet does not exist", ErrNotFound)
	}
	return err
}

func (s *TweetService) owned(ctx context.Context, id, userID uuid.UUID) error {
	t, err := s.tweets.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: tweet does not exist", ErrNotFound)
	}
	if err != nil {
		return err
	}
	if t.OwnerID != userID {
		return fmt.Errorf("%w: only the author can modify this tweet", ErrForbidden)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// LikeStore is the slice of the like repository the like flows need.
type LikeStore interface {
	Toggle(ctx context.Context, kind model.LikeTargetKind, targetID, userID uuid.UUID) (bool, error)
	LikedVideos(ctx context.Context, userID uuid.UUID) ([]model.VideoWithOwner, error)
}

// CommentFinder and TweetFinder confirm a like target exists before the
// toggle runs.
type CommentFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
}

type TweetFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
}

type LikeService struct {
	likes    LikeStore
	videos   CommentVideoStore
	comments CommentFinder
	tweets   TweetFinder
}

func NewLikeService(likes LikeStore, videos CommentVideoStore, comments CommentFinder, tweets TweetFinder) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments, tweets: tweets}
}

// ToggleVideo flips the caller's like on a video. Returns the new state.
func (s *LikeService) ToggleVideo(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	v, err := s.videos.FindByID(ctx, videoID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	if err != nil {
		return false, err
	}
	if !v.IsPublished && v.OwnerID != userID {
		return false, fmt.Errorf("%w: video does not exist", ErrNotFound)
	}
	return s.likes.Toggle(ctx, model.LikeTargetVideo, videoID, userID)
}

// ToggleComment flips the caller's like on a comment. Returns the new state.
func (s *LikeService) ToggleComment(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	if _, err := s.comments.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, fmt.Errorf("%w: comment does not exist", ErrNotFound)
		}
		return false, err
	}
	return s.likes.Toggle(ctx, model.LikeTargetComment, commentID, userID)
}

// ToggleTweet flips the caller's like on a tweet. Returns the new state.
func (s *LikeService) ToggleTweet(ctx context.Context, tweetID, userID uuid.UUID) (bool, error) {
	if _, err := s.tweets.FindByID(ctx, tweetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, fmt.Errorf("%w: tweet does not exist", ErrNotFound)
		}
		return false, err
	}
	return s.likes.Toggle(ctx, model.LikeTargetTweet, tweetID, userID)
}

// LikedVideos returns the published videos the caller has liked.
func (s *LikeService) LikedVideos(ctx context.Context, userID uuid.UUID) ([]model.VideoWithOwner, error) {
	videos, err := s.likes.LikedVideos(ctx, userID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.VideoWithOwner{}
	}
	return videos, nil
}

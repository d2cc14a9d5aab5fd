package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeTargetKind selects which entity a like points at. Exactly one target
// is set per like row (enforced by a CHECK constraint).
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// Like records that a user liked a single video, comment or tweet.
type Like struct {
	ID        uuid.UUID  `json:"id"`
	VideoID   *uuid.UUID `json:"videoId,omitempty"`
	CommentID *uuid.UUID `json:"commentId,omitempty"`
	TweetID   *uuid.UUID `json:"tweetId,omitempty"`
	LikedBy   uuid.UUID  `json:"likedBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment on a video.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"videoId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentWithOwner is a comment with its author populated.
type CommentWithOwner struct {
	Comment
	Owner PublicUser `json:"owner"`
}

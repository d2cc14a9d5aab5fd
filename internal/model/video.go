package model

import (
	"time"

	"github.com/google/uuid"
)

// Video is a published (or draft) video document.
type Video struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VideoWithOwner is a video with its owner populated for read paths.
type VideoWithOwner struct {
	Video
	Owner PublicUser `json:"owner"`
}

// VideoListParams are the caller-supplied listing controls after validation.
type VideoListParams struct {
	Query    string
	OwnerID  *uuid.UUID
	SortBy   string
	SortAsc  bool
	Page     int
	Limit    int
}

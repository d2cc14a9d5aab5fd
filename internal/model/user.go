package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. A user is also a channel: subscriptions
// reference users on both sides.
type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Fullname      string    `json:"fullname"`
	PasswordHash  string    `json:"-"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage"`
	RefreshToken  *string   `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PublicUser is the sanitized user shape embedded in other responses
// (video owner, comment author, subscriber lists).
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Fullname  string    `json:"fullname"`
	AvatarURL string    `json:"avatar"`
}

// Public strips everything that must never leave the server.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Fullname:  u.Fullname,
		AvatarURL: u.AvatarURL,
	}
}

// ChannelProfile is the channel page for a username, as seen by a viewer.
type ChannelProfile struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Fullname        string    `json:"fullname"`
	AvatarURL       string    `json:"avatar"`
	CoverImageURL   string    `json:"coverImage"`
	SubscriberCount int64     `json:"subscriberCount"`
	SubscribedTo    int64     `json:"channelsSubscribedToCount"`
	IsSubscribed    bool      `json:"isSubscribed"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ChannelStats is the dashboard aggregate for a channel's own content.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription records that subscriber follows channel (both are users).
// Self-subscriptions are rejected at both the service and schema level.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	SubscriberID uuid.UUID `json:"subscriberId"`
	ChannelID    uuid.UUID `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Subscriber is a subscription with the subscribing user populated.
type Subscriber struct {
	Subscription
	Subscriber PublicUser `json:"subscriber"`
}

// SubscribedChannel is a subscription with the target channel populated.
type SubscribedChannel struct {
	Subscription
	Channel PublicUser `json:"channel"`
}

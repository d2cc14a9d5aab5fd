package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// SubscriptionStore is the slice of the subscription repository the
// subscription flows need.
type SubscriptionStore interface {
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	Subscribers(ctx context.Context, channelID uuid.UUID) ([]model.Subscriber, error)
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.SubscribedChannel, error)
}

// ChannelFinder resolves a channel (user) id before a toggle or listing.
type ChannelFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type SubscriptionService struct {
	subs  SubscriptionStore
	users ChannelFinder
	cache *CacheService
}

func NewSubscriptionService(subs SubscriptionStore, users ChannelFinder, cache *CacheService) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, cache: cache}
}

// Toggle flips the caller's subscription to a channel. Subscribing to your
// own channel is rejected. Returns the new state.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	if subscriberID == channelID {
		return false, fmt.Errorf("%w: cannot subscribe to your own channel", ErrInvalidInput)
	}

	channel, err := s.users.FindByID(ctx, channelID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("%w: channel does not exist", ErrNotFound)
	}
	if err != nil {
		return false, err
	}

	subscribed, err := s.subs.Toggle(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}

	// Subscriber counts live in the cached channel profile.
	_ = s.cache.InvalidateChannel(ctx, channel.Username)
	return subscribed, nil
}

// Subscribers lists the users subscribed to a channel.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID uuid.UUID) ([]model.Subscriber, error) {
	if _, err := s.users.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: channel does not exist", ErrNotFound)
		}
		return nil, err
	}

	subs, err := s.subs.Subscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []model.Subscriber{}
	}
	return subs, nil
}

// SubscribedChannels lists the channels a user subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.SubscribedChannel, error) {
	if _, err := s.users.FindByID(ctx, subscriberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user does not exist", ErrNotFound)
		}
		return nil, err
	}

	subs, err := s.subs.SubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []model.SubscribedChannel{}
	}
	return subs, nil
}

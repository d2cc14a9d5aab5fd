package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
)

type subKey struct {
	subscriber uuid.UUID
	channel    uuid.UUID
}

type fakeSubStore struct {
	subs map[subKey]bool
}

func newFakeSubStore() *fakeSubStore {
	return &fakeSubStore{subs: make(map[subKey]bool)}
}

func (f *fakeSubStore) Toggle(_ context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	key := subKey{subscriberID, channelID}
	if f.subs[key] {
		delete(f.subs, key)
		return false, nil
	}
	f.subs[key] = true
	return true, nil
}

func (f *fakeSubStore) Subscribers(_ context.Context, channelID uuid.UUID) ([]model.Subscriber, error) {
	var out []model.Subscriber
	for key := range f.subs {
		if key.channel == channelID {
			out = append(out, model.Subscriber{})
		}
	}
	return out, nil
}

func (f *fakeSubStore) SubscribedChannels(_ context.Context, subscriberID uuid.UUID) ([]model.SubscribedChannel, error) {
	var out []model.SubscribedChannel
	for key := range f.subs {
		if key.subscriber == subscriberID {
			out = append(out, model.SubscribedChannel{})
		}
	}
	return out, nil
}

func subTestUsers(t *testing.T) (*fakeUserStore, *model.User, *model.User) {
	t.Helper()
	store := newFakeUserStore()
	alice, err := store.Create(context.Background(), &model.User{Username: "alice", Email: "alice@x.com"})
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := store.Create(context.Background(), &model.User{Username: "bob", Email: "bob@x.com"})
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}
	return store, alice, bob
}

func TestSubscriptionService_TogglePairNetsToZero(t *testing.T) {
	users, alice, bob := subTestUsers(t)
	subs := newFakeSubStore()
	svc := NewSubscriptionService(subs, users, NewCacheService(""))

	subscribed, err := svc.Toggle(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !subscribed {
		t.Error("first toggle should subscribe")
	}

	subscribed, err = svc.Toggle(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if subscribed {
		t.Error("second toggle should unsubscribe")
	}
	if len(subs.subs) != 0 {
		t.Errorf("subscription count after pair = %d, want 0", len(subs.subs))
	}
}

func TestSubscriptionService_SelfSubscriptionRejected(t *testing.T) {
	users, alice, _ := subTestUsers(t)
	svc := NewSubscriptionService(newFakeSubStore(), users, NewCacheService(""))

	_, err := svc.Toggle(context.Background(), alice.ID, alice.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("self-subscription should be ErrInvalidInput, got %v", err)
	}
}

func TestSubscriptionService_ToggleMissingChannel(t *testing.T) {
	users, alice, _ := subTestUsers(t)
	svc := NewSubscriptionService(newFakeSubStore(), users, NewCacheService(""))

	_, err := svc.Toggle(context.Background(), alice.ID, uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing channel should be ErrNotFound, got %v", err)
	}
}

func TestSubscriptionService_ListingsReturnEmptySlices(t *testing.T) {
	users, alice, bob := subTestUsers(t)
	svc := NewSubscriptionService(newFakeSubStore(), users, NewCacheService(""))

	got, err := svc.Subscribers(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("Subscribers: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Subscribers = %v, want empty non-nil slice", got)
	}

	channels, err := svc.SubscribedChannels(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("SubscribedChannels: %v", err)
	}
	if channels == nil || len(channels) != 0 {
		t.Errorf("SubscribedChannels = %v, want empty non-nil slice", channels)
	}

	if _, err := svc.Subscribers(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing channel should be ErrNotFound, got %v", err)
	}
}

func TestSubscriptionService_ListingsReflectToggles(t *testing.T) {
	users, alice, bob := subTestUsers(t)
	svc := NewSubscriptionService(newFakeSubStore(), users, NewCacheService(""))

	if _, err := svc.Toggle(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	subs, err := svc.Subscribers(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("Subscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("subscriber count = %d, want 1", len(subs))
	}

	channels, err := svc.SubscribedChannels(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("SubscribedChannels: %v", err)
	}
	if len(channels) != 1 {
		t.Errorf("subscribed channel count = %d, want 1", len(channels))
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

type fakeTweetStore struct {
	tweets []*model.Tweet
}

func (f *fakeTweetStore) Create(_ context.Context, ownerID uuid.UUID, content string) (*model.Tweet, error) {
	tw := &model.Tweet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	f.tweets = append(f.tweets, tw)
	clone := *tw
	return &clone, nil
}

func (f *fakeTweetStore) FindByID(_ context.Context, id uuid.UUID) (*model.Tweet, error) {
	for _, tw := range f.tweets {
		if tw.ID == id {
			clone := *tw
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTweetStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Tweet, error) {
	var out []model.Tweet
	for i := len(f.tweets) - 1; i >= 0; i-- {
		if f.tweets[i].OwnerID == ownerID {
			out = append(out, *f.tweets[i])
		}
	}
	return out, nil
}

func (f *fakeTweetStore) Update(_ context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	for _, tw := range f.tweets {
		if tw.ID == id {
			tw.Content = content
			clone := *tw
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTweetStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, tw := range f.tweets {
		if tw.ID == id {
			f.tweets = append(f.tweets[:i], f.tweets[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestTweetService_CreateAndList(t *testing.T) {
	svc := NewTweetService(&fakeTweetStore{})
	author := uuid.New()

	if _, err := svc.Create(context.Background(), author, "hello"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), author, "world"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), uuid.New(), "someone else"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tweets, err := svc.ListForUser(context.Background(), author)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(tweets) != 2 {
		t.Fatalf("tweet count = %d, want 2", len(tweets))
	}
	// Newest first.
	if tweets[0].Content != "world" {
		t.Errorf("first tweet = %q, want %q", tweets[0].Content, "world")
	}
}

func TestTweetService_CreateRequiresContent(t *testing.T) {
	svc := NewTweetService(&fakeTweetStore{})
	if _, err := svc.Create(context.Background(), uuid.New(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty content should be ErrInvalidInput, got %v", err)
	}
}

func TestTweetService_ListForUserWithNoTweets(t *testing.T) {
	svc := NewTweetService(&fakeTweetStore{})
	tweets, err := svc.ListForUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if tweets == nil || len(tweets) != 0 {
		t.Errorf("want empty non-nil slice, got %v", tweets)
	}
}

func TestTweetService_OnlyAuthorMayMutate(t *testing.T) {
	store := &fakeTweetStore{}
	svc := NewTweetService(store)
	author := uuid.New()
	stranger := uuid.New()

	tw, err := svc.Create(context.Background(), author, "original")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(context.Background(), tw.ID, stranger, "hijacked"); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger update should be ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), tw.ID, stranger); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger delete should be ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), tw.ID, author, "edited")
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("content = %q, want %q", updated.Content, "edited")
	}

	if err := svc.Delete(context.Background(), tw.ID, author); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := svc.Update(context.Background(), tw.ID, author, "too late"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing tweet should be ErrNotFound, got %v", err)
	}
}

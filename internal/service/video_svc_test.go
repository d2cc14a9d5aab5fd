package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// fakeVideoStore is an in-memory VideoStore with owner stubs.
type fakeVideoStore struct {
	videos map[uuid.UUID]*model.Video
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{videos: make(map[uuid.UUID]*model.Video)}
}

func (f *fakeVideoStore) Create(_ context.Context, v *model.Video) (*model.Video, error) {
	clone := *v
	clone.ID = uuid.New()
	f.videos[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (f *fakeVideoStore) FindByID(_ context.Context, id uuid.UUID) (*model.VideoWithOwner, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.VideoWithOwner{Video: *v}, nil
}

func (f *fakeVideoStore) List(_ context.Context, params model.VideoListParams, includeUnpublished bool) ([]model.VideoWithOwner, int64, error) {
	var matched []model.VideoWithOwner
	for _, v := range f.videos {
		if !v.IsPublished && !includeUnpublished {
			continue
		}
		if params.OwnerID != nil && v.OwnerID != *params.OwnerID {
			continue
		}
		matched = append(matched, model.VideoWithOwner{Video: *v})
	}

	total := int64(len(matched))
	start := (params.Page - 1) * params.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeVideoStore) Update(_ context.Context, id uuid.UUID, title, description, thumbnailURL string) (*model.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if title != "" {
		v.Title = title
	}
	if description != "" {
		v.Description = description
	}
	if thumbnailURL != "" {
		v.ThumbnailURL = thumbnailURL
	}
	clone := *v
	return &clone, nil
}

func (f *fakeVideoStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.videos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.videos, id)
	return nil
}

func (f *fakeVideoStore) TogglePublish(_ context.Context, id uuid.UUID) (bool, error) {
	v, ok := f.videos[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	v.IsPublished = !v.IsPublished
	return v.IsPublished, nil
}

func (f *fakeVideoStore) IncrementViews(_ context.Context, id uuid.UUID) error {
	v, ok := f.videos[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Views++
	return nil
}

func newVideoService(store *fakeVideoStore) *VideoService {
	return NewVideoService(store, NewCacheService(""))
}

func publish(t *testing.T, svc *VideoService, owner uuid.UUID, title string) *model.Video {
	t.Helper()
	v, err := svc.Publish(context.Background(), owner, title, "a description",
		"https://cdn.example.com/v.mp4", "https://cdn.example.com/t.png", 42.5)
	if err != nil {
		t.Fatalf("Publish(%q): %v", title, err)
	}
	return v
}

func TestVideoService_PublishRequiresFiles(t *testing.T) {
	svc := newVideoService(newFakeVideoStore())
	owner := uuid.New()

	_, err := svc.Publish(context.Background(), owner, "title", "", "", "thumb", 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing video file should be ErrInvalidInput, got %v", err)
	}
	_, err = svc.Publish(context.Background(), owner, "", "", "video", "thumb", 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing title should be ErrInvalidInput, got %v", err)
	}
}

func TestVideoService_DraftHiddenFromNonOwner(t *testing.T) {
	store := newFakeVideoStore()
	svc := newVideoService(store)
	owner := uuid.New()

	v := publish(t, svc, owner, "draft")
	if _, err := svc.TogglePublish(context.Background(), v.ID, owner); err != nil {
		t.Fatalf("TogglePublish: %v", err)
	}

	if _, err := svc.Get(context.Background(), v.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("draft should look missing to non-owners, got %v", err)
	}
	if _, err := svc.Get(context.Background(), v.ID, owner); err != nil {
		t.Errorf("owner should see their draft: %v", err)
	}
}

func TestVideoService_ViewsCountedForNonOwnerOnly(t *testing.T) {
	store := newFakeVideoStore()
	svc := newVideoService(store)
	owner := uuid.New()
	v := publish(t, svc, owner, "watched")

	if _, err := svc.Get(context.Background(), v.ID, owner); err != nil {
		t.Fatalf("owner Get: %v", err)
	}
	if store.videos[v.ID].Views != 0 {
		t.Errorf("owner fetch should not count a view, got %d", store.videos[v.ID].Views)
	}

	if _, err := svc.Get(context.Background(), v.ID, uuid.New()); err != nil {
		t.Fatalf("viewer Get: %v", err)
	}
	if store.videos[v.ID].Views != 1 {
		t.Errorf("views = %d, want 1", store.videos[v.ID].Views)
	}
}

func TestVideoService_TogglePublishTwiceRestoresState(t *testing.T) {
	store := newFakeVideoStore()
	svc := newVideoService(store)
	owner := uuid.New()
	v := publish(t, svc, owner, "flip")

	published, err := svc.TogglePublish(context.Background(), v.ID, owner)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if published {
		t.Error("first toggle should unpublish")
	}

	published, err = svc.TogglePublish(context.Background(), v.ID, owner)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !published {
		t.Error("second toggle should re-publish")
	}
	if !store.videos[v.ID].IsPublished {
		t.Error("video should be back to published")
	}
}

func TestVideoService_OnlyOwnerMayMutate(t *testing.T) {
	store := newFakeVideoStore()
	svc := newVideoService(store)
	owner := uuid.New()
	stranger := uuid.New()
	v := publish(t, svc, owner, "mine")

	if _, err := svc.Update(context.Background(), v.ID, stranger, "new title", "", ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger update should be ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), v.ID, stranger); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger delete should be ErrForbidden, got %v", err)
	}
	if _, err := svc.TogglePublish(context.Background(), v.ID, stranger); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger toggle should be ErrForbidden, got %v", err)
	}

	if _, err := svc.Update(context.Background(), v.ID, owner, "new title", "", ""); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if store.videos[v.ID].Title != "new title" {
		t.Errorf("title = %q, want %q", store.videos[v.ID].Title, "new title")
	}
	if err := svc.Delete(context.Background(), v.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, ok := store.videos[v.ID]; ok {
		t.Error("video should be gone after delete")
	}
}

func TestVideoService_ListPaginationMetadata(t *testing.T) {
	store := newFakeVideoStore()
	svc := newVideoService(store)
	owner := uuid.New()
	for i := 0; i < 5; i++ {
		publish(t, svc, owner, "video")
	}

	page, err := svc.List(context.Background(), model.VideoListParams{Page: 2, Limit: 2}, uuid.Nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalDocs != 5 {
		t.Errorf("totalDocs = %d, want 5", page.TotalDocs)
	}
	if page.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", page.TotalPages)
	}
	if len(page.Docs) != 2 {
		t.Errorf("len(docs) = %d, want 2", len(page.Docs))
	}
	if !page.HasNextPage || !page.HasPrevPage {
		t.Errorf("page 2 of 3 should have both neighbors, got next=%v prev=%v",
			page.HasNextPage, page.HasPrevPage)
	}
}

func TestVideoService_ListHidesDraftsFromAnonymous(t *testing.T) {
	store := newFakeVideoStore()
	svc := newVideoService(store)
	owner := uuid.New()
	v := publish(t, svc, owner, "soon to be draft")
	publish(t, svc, owner, "public")
	if _, err := svc.TogglePublish(context.Background(), v.ID, owner); err != nil {
		t.Fatalf("TogglePublish: %v", err)
	}

	page, err := svc.List(context.Background(), model.VideoListParams{Page: 1, Limit: 10}, uuid.Nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalDocs != 1 {
		t.Errorf("anonymous list totalDocs = %d, want 1", page.TotalDocs)
	}

	// The owner filtering by their own channel sees drafts too.
	page, err = svc.List(context.Background(), model.VideoListParams{Page: 1, Limit: 10, OwnerID: &owner}, owner)
	if err != nil {
		t.Fatalf("owner List: %v", err)
	}
	if page.TotalDocs != 2 {
		t.Errorf("owner list totalDocs = %d, want 2", page.TotalDocs)
	}

	// A different requester filtering by that channel sees published only.
	page, err = svc.List(context.Background(), model.VideoListParams{Page: 1, Limit: 10, OwnerID: &owner}, uuid.New())
	if err != nil {
		t.Fatalf("stranger List: %v", err)
	}
	if page.TotalDocs != 1 {
		t.Errorf("stranger list totalDocs = %d, want 1", page.TotalDocs)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// ProfileStore is the slice of the user repository profile management needs.
type ProfileStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fullname, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) (*model.User, error)
	ChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*model.ChannelProfile, error)
}

type UserService struct {
	users ProfileStore
	cache *CacheService
}

func NewUserService(users ProfileStore, cache *CacheService) *UserService {
	return &UserService{users: users, cache: cache}
}

// Current returns the authenticated user's own record.
func (s *UserService) Current(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: user does not exist", ErrNotFound)
	}
	return u, err
}

// UpdateProfile changes fullname and email; empty fields are left as-is.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.User, error) {
	if req.Fullname == "" && req.Email == "" {
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}
	u, err := s.users.UpdateProfile(ctx, userID, req.Fullname, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: user does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, u.Username)
	return u, nil
}

// UpdateAvatar points the user's avatar at a freshly uploaded image.
func (s *UserService) UpdateAvatar(ctx context.Context, userID uuid.UUID, url string) (*model.User, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: avatar file is required", ErrInvalidInput)
	}
	u, err := s.users.UpdateAvatar(ctx, userID, url)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: user does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, u.Username)
	return u, nil
}

// UpdateCoverImage points the user's cover image at a freshly uploaded image.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, url string) (*model.User, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: cover image file is required", ErrInvalidInput)
	}
	u, err := s.users.UpdateCoverImage(ctx, userID, url)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: user does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, u.Username)
	return u, nil
}

// ChannelProfile returns the channel page for a username as seen by the
// viewer. Anonymous viewers pass uuid.Nil. Profiles of anonymous viewers
// are served cache-aside since they carry no viewer-specific state.
func (s *UserService) ChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*model.ChannelProfile, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	if viewerID == uuid.Nil {
		if p, err := s.cache.GetChannel(ctx, username); err == nil && p != nil {
			return p, nil
		}
	}

	p, err := s.users.ChannelProfile(ctx, username, viewerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: channel does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if viewerID == uuid.Nil {
		_ = s.cache.SetChannel(ctx, username, p)
	}
	return p, nil
}

func (s *UserService) invalidate(ctx context.Context, username string) {
	_ = s.cache.InvalidateChannel(ctx, username)
}

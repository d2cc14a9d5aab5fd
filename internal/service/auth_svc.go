package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
	"github.com/DivyanshGarg380/Backend-Project/pkg/hash"
)

// AuthUserStore is the slice of the user repository the auth flow needs.
type AuthUserStore interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// AuthService implements registration, credential login and the refresh
// token rotation flow.
type AuthService struct {
	users  AuthUserStore
	tokens *TokenService
}

func NewAuthService(users AuthUserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account. The avatar URL is required; the cover
// image is optional. Passwords are stored as bcrypt hashes only.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest, avatarURL, coverImageURL string) (*model.User, error) {
	req.Username = strings.TrimSpace(strings.ToLower(req.Username))
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Fullname = strings.TrimSpace(req.Fullname)

	if req.Username == "" || req.Email == "" || req.Fullname == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if avatarURL == "" {
		return nil, fmt.Errorf("%w: avatar is required", ErrInvalidInput)
	}

	passwordHash, err := hash.Password(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &model.User{
		Username:      req.Username,
		Email:         req.Email,
		Fullname:      req.Fullname,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	})
	if errors.Is(err, repository.ErrConflict) {
		return nil, fmt.Errorf("%w: username or email already exists", ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials by username or email, then issues and persists
// a fresh token pair. The refresh token is stored before the pair is
// returned so a crash cannot leave a valid token unrecorded.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, *model.TokenPair, error) {
	if req.Username == "" && req.Email == "" {
		return nil, nil, fmt.Errorf("%w: username or email is required", ErrInvalidInput)
	}

	user, err := s.users.FindByUsernameOrEmail(ctx,
		strings.ToLower(req.Username), strings.ToLower(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, fmt.Errorf("%w: user does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	pair, err := s.issueAndPersist(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates the token pair. The presented refresh token must verify
// AND textually match the one on record; any older token is rejected even
// if its signature is still valid.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token is required", ErrUnauthorized)
	}

	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("%w: refresh token is expired or used", ErrUnauthorized)
	}

	return s.issueAndPersist(ctx, user)
}

// Logout clears the stored refresh token so the session cannot be renewed.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := s.users.UpdateRefreshToken(ctx, userID, nil)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: user does not exist", ErrNotFound)
	}
	return err
}

// ChangePassword verifies the old password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req model.ChangePasswordRequest) error {
	if req.NewPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: user does not exist", ErrNotFound)
	}
	if err != nil {
		return err
	}

	if !hash.CheckPassword(user.PasswordHash, req.OldPassword) {
		return fmt.Errorf("%w: invalid old password", ErrUnauthorized)
	}

	newHash, err := hash.Password(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, newHash)
}

func (s *AuthService) issueAndPersist(ctx context.Context, user *model.User) (*model.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	if err := s.users.UpdateRefreshToken(ctx, user.ID, &refresh); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}
	return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

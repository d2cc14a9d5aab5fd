package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/repository"
)

// fakeUserStore is an in-memory AuthUserStore.
type fakeUserStore struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) (*model.User, error) {
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, repository.ErrConflict
		}
	}
	clone := *u
	clone.ID = uuid.New()
	f.users[clone.ID] = &clone
	return &clone, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) FindByUsernameOrEmail(_ context.Context, username, email string) (*model.User, error) {
	for _, u := range f.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) UpdateRefreshToken(_ context.Context, id uuid.UUID, token *string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = token
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func newAuthService(store *fakeUserStore) *AuthService {
	return NewAuthService(store, testTokenService())
}

func register(t *testing.T, svc *AuthService) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), model.RegisterRequest{
		Fullname: "Alice Example",
		Email:    "alice@x.com",
		Username: "alice",
		Password: "s3cret-pass",
	}, "https://cdn.example.com/avatar.png", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return user
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	created := register(t, svc)
	if created.PasswordHash == "s3cret-pass" {
		t.Fatal("password must not be stored in plaintext")
	}

	user, pair, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Error("login should return a full token pair")
	}
	if user.ID != created.ID {
		t.Errorf("logged in as %s, want %s", user.ID, created.ID)
	}

	// Refresh token is persisted before the pair is returned.
	stored := store.users[created.ID]
	if stored.RefreshToken == nil || *stored.RefreshToken != pair.RefreshToken {
		t.Error("refresh token should be persisted at login")
	}
}

func TestAuthService_LoginByEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	register(t, svc)

	if _, _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "alice@x.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("login by email: %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	register(t, svc)

	_, _, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("want ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	register(t, svc)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Fullname: "Other Alice",
		Email:    "alice@x.com",
		Username: "alice2",
		Password: "whatever1",
	}, "https://cdn.example.com/a.png", "")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("want ErrConflict, got %v", err)
	}
}

func TestAuthService_RegisterRequiresAvatar(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Fullname: "Alice Example",
		Email:    "alice@x.com",
		Username: "alice",
		Password: "s3cret-pass",
	}, "", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_RefreshRotation(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	register(t, svc)

	_, first, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice", Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("first refresh should succeed: %v", err)
	}

	// The superseded token no longer matches the stored one.
	if _, err := svc.Refresh(context.Background(), first.RefreshToken); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("superseded refresh token should be rejected, got %v", err)
	}

	// The current token still works.
	if _, err := svc.Refresh(context.Background(), second.RefreshToken); err != nil {
		t.Errorf("current refresh token should work: %v", err)
	}
}

func TestAuthService_LogoutClearsRefreshToken(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	user := register(t, svc)

	_, pair, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice", Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if store.users[user.ID].RefreshToken != nil {
		t.Error("logout should clear the stored refresh token")
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("refresh after logout should be rejected, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	user := register(t, svc)

	err := svc.ChangePassword(context.Background(), user.ID, model.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-pass-123",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong old password should be rejected, got %v", err)
	}

	err = svc.ChangePassword(context.Background(), user.ID, model.ChangePasswordRequest{
		OldPassword: "s3cret-pass",
		NewPassword: "new-pass-123",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alice", Password: "new-pass-123",
	}); err != nil {
		t.Errorf("login with new password should succeed: %v", err)
	}
}

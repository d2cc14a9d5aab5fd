package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/config"
)

func testTokenService() *TokenService {
	return NewTokenService(&config.Config{
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    10 * 24 * time.Hour,
	})
}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	svc := testTokenService()
	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID, "alice")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims, err := svc.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("subject = %q, want %q", claims.Subject, userID)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want alice", claims.Username)
	}
}

func TestTokenService_RefreshRoundTrip(t *testing.T) {
	svc := testTokenService()
	userID := uuid.New()

	token, err := svc.IssueRefreshToken(userID)
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	got, err := svc.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken: %v", err)
	}
	if got != userID {
		t.Errorf("user id = %s, want %s", got, userID)
	}
}

func TestTokenService_KindsAreNotInterchangeable(t *testing.T) {
	svc := testTokenService()
	userID := uuid.New()

	access, _ := svc.IssueAccessToken(userID, "alice")
	refresh, _ := svc.IssueRefreshToken(userID)

	if _, err := svc.VerifyRefreshToken(access); err == nil {
		t.Error("access token should not verify as refresh token")
	}
	if _, err := svc.VerifyAccessToken(refresh); err == nil {
		t.Error("refresh token should not verify as access token")
	}
}

func TestTokenService_ExpiredRejected(t *testing.T) {
	svc := testTokenService()
	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID, "alice")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	// Move the verifier's clock past the TTL.
	svc.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
	if _, err := svc.VerifyAccessToken(token); err == nil {
		t.Error("expired access token should be rejected")
	}
}

func TestTokenService_GarbageRejected(t *testing.T) {
	svc := testTokenService()
	if _, err := svc.VerifyAccessToken("not-a-token"); err == nil {
		t.Error("garbage should be rejected")
	}
	if _, err := svc.VerifyRefreshToken(""); err == nil {
		t.Error("empty token should be rejected")
	}
}

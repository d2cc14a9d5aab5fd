package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID   = "userID"
	LocalUsername = "username"
)

// AccessCookie is the cookie carrying the access token; a Bearer header
// works as well for non-browser clients.
const AccessCookie = "accessToken"

// tokenFromRequest pulls the access token from the cookie or the
// Authorization header.
func tokenFromRequest(c fiber.Ctx) string {
	if t := c.Cookies(AccessCookie); t != "" {
		return t
	}
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAuth rejects requests without a valid access token and stores the
// caller's identity in Locals.
func RequireAuth(tokens *service.TokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized request")
		}

		claims, err := tokens.VerifyAccessToken(token)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid access token")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid access token")
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, claims.Username)
		return c.Next()
	}
}

// OptionalAuth stores the caller's identity when a valid token is present
// but lets anonymous requests through.
func OptionalAuth(tokens *service.TokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := tokens.VerifyAccessToken(token); err == nil {
				if userID, err := uuid.Parse(claims.Subject); err == nil {
					c.Locals(LocalUserID, userID)
					c.Locals(LocalUsername, claims.Username)
				}
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id from Locals, or uuid.Nil when
// the request is anonymous.
func UserID(c fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(LocalUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

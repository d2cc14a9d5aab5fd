package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Field length limits matching database expectations and client contracts.
const (
	MaxUsernameLen = 30
	MaxFullnameLen = 100
	MaxTitleLen    = 200
	MaxContentLen  = 2000
	MaxPageLimit   = 100
)

var (
	// usernameRe matches lowercase handles: letters, digits, dot, dash, underscore.
	usernameRe = regexp.MustCompile(`^[a-z0-9._-]+$`)
	// emailRe is a light format check; real validation happens at delivery.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ErrorResponse writes the standard API error envelope.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
}

// ValidateID checks that a path parameter is a well-formed UUID.
func ValidateID(raw, field string) (uuid.UUID, string) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, field + " must be a valid id"
	}
	return id, ""
}

// ValidateUsername normalizes and checks a username.
func ValidateUsername(username string) (string, string) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return "", "username is required"
	}
	if len(username) > MaxUsernameLen {
		return "", "username must be at most 30 characters"
	}
	if !usernameRe.MatchString(username) {
		return "", "username contains invalid characters"
	}
	return username, ""
}

// ValidateEmail normalizes and checks an email address.
func ValidateEmail(email string) (string, string) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", "email is required"
	}
	if !emailRe.MatchString(email) {
		return "", "email is not valid"
	}
	return email, ""
}

// ValidateContent trims free-text content and enforces the length cap.
func ValidateContent(content string) (string, string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", "content is required"
	}
	if len(content) > MaxContentLen {
		return "", "content must be at most 2000 characters"
	}
	return content, ""
}

// ValidatePagination clamps page and limit to sane bounds.
func ValidatePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

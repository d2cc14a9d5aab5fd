package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

// RefreshCookie is the cookie carrying the refresh token.
const RefreshCookie = "refreshToken"

type AuthHandler struct {
	auth       *service.AuthService
	media      *service.MediaService
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthHandler(auth *service.AuthService, media *service.MediaService, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, media: media, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Register handles POST /api/v1/users/register.
// Multipart form: fullname, email, username, password, avatar (file,
// required), coverImage (file, optional).
func (h *AuthHandler) Register(c fiber.Ctx) error {
	req := model.RegisterRequest{
		Fullname: c.FormValue("fullname"),
		Email:    c.FormValue("email"),
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	if username, errMsg := middleware.ValidateUsername(req.Username); errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	} else {
		req.Username = username
	}
	if email, errMsg := middleware.ValidateEmail(req.Email); errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	} else {
		req.Email = email
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "avatar file is required")
	}
	avatarURL, err := h.media.UploadImage(c.Context(), avatarFile)
	if err != nil {
		return ServiceError(c, err)
	}

	var coverURL string
	if coverFile, err := c.FormFile("coverImage"); err == nil {
		coverURL, err = h.media.UploadImage(c.Context(), coverFile)
		if err != nil {
			return ServiceError(c, err)
		}
	}

	user, err := h.auth.Register(c.Context(), req, avatarURL, coverURL)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusCreated, user, "User registered successfully")
}

// Login handles POST /api/v1/users/login.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, pair, err := h.auth.Login(c.Context(), req)
	if err != nil {
		return ServiceError(c, err)
	}

	h.setTokenCookies(c, pair)
	return Success(c, fiber.StatusOK, fiber.Map{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "User logged in successfully")
}

// Logout handles POST /api/v1/users/logout.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), middleware.UserID(c)); err != nil {
		return ServiceError(c, err)
	}

	c.ClearCookie(middleware.AccessCookie, RefreshCookie)
	return Success(c, fiber.StatusOK, fiber.Map{}, "User logged out successfully")
}

// Refresh handles POST /api/v1/users/refresh-token. The refresh token comes
// from the cookie or, for non-browser clients, the request body.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	token := c.Cookies(RefreshCookie)
	if token == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.Bind().JSON(&body); err == nil {
			token = body.RefreshToken
		}
	}

	pair, err := h.auth.Refresh(c.Context(), token)
	if err != nil {
		return ServiceError(c, err)
	}

	h.setTokenCookies(c, pair)
	return Success(c, fiber.StatusOK, fiber.Map{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Access token refreshed")
}

// ChangePassword handles POST /api/v1/users/change-password.
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	var req model.ChangePasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.auth.ChangePassword(c.Context(), middleware.UserID(c), req); err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, fiber.Map{}, "Password changed successfully")
}

func (h *AuthHandler) setTokenCookies(c fiber.Ctx, pair *model.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessCookie,
		Value:    pair.AccessToken,
		Expires:  time.Now().Add(h.accessTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookie,
		Value:    pair.RefreshToken,
		Expires:  time.Now().Add(h.refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

type UserHandler struct {
	users *service.UserService
	media *service.MediaService
}

func NewUserHandler(users *service.UserService, media *service.MediaService) *UserHandler {
	return &UserHandler{users: users, media: media}
}

// Current handles GET /api/v1/users/current-user.
func (h *UserHandler) Current(c fiber.Ctx) error {
	user, err := h.users.Current(c.Context(), middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, user, "Current user fetched successfully")
}

// UpdateProfile handles PATCH /api/v1/users/update-account.
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	var req model.UpdateProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Email != "" {
		email, errMsg := middleware.ValidateEmail(req.Email)
		if errMsg != "" {
			return Fail(c, fiber.StatusBadRequest, errMsg)
		}
		req.Email = email
	}

	user, err := h.users.UpdateProfile(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, user, "Account details updated successfully")
}

// UpdateAvatar handles PATCH /api/v1/users/avatar.
func (h *UserHandler) UpdateAvatar(c fiber.Ctx) error {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "avatar file is required")
	}

	url, err := h.media.UploadImage(c.Context(), fh)
	if err != nil {
		return ServiceError(c, err)
	}

	user, err := h.users.UpdateAvatar(c.Context(), middleware.UserID(c), url)
	if err != nil {
		return ServiceError(c, err)
	}
	Metrics.UploadsTotal.WithLabelValues("image").Inc()
	return Success(c, fiber.StatusOK, user, "Avatar updated successfully")
}

// UpdateCoverImage handles PATCH /api/v1/users/cover-image.
func (h *UserHandler) UpdateCoverImage(c fiber.Ctx) error {
	fh, err := c.FormFile("coverImage")
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "cover image file is required")
	}

	url, err := h.media.UploadImage(c.Context(), fh)
	if err != nil {
		return ServiceError(c, err)
	}

	user, err := h.users.UpdateCoverImage(c.Context(), middleware.UserID(c), url)
	if err != nil {
		return ServiceError(c, err)
	}
	Metrics.UploadsTotal.WithLabelValues("image").Inc()
	return Success(c, fiber.StatusOK, user, "Cover image updated successfully")
}

// ChannelProfile handles GET /api/v1/users/c/:username.
func (h *UserHandler) ChannelProfile(c fiber.Ctx) error {
	username, errMsg := middleware.ValidateUsername(c.Params("username"))
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	profile, err := h.users.ChannelProfile(c.Context(), username, middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, profile, "Channel profile fetched successfully")
}

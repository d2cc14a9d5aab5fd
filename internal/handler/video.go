package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/model"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

type VideoHandler struct {
	videos *service.VideoService
	media  *service.MediaService
}

func NewVideoHandler(videos *service.VideoService, media *service.MediaService) *VideoHandler {
	return &VideoHandler{videos: videos, media: media}
}

// List handles GET /api/v1/videos.
// Query: page, limit, query, sortBy, sortType (asc|desc), userId.
func (h *VideoHandler) List(c fiber.Ctx) error {
	page, limit := middleware.ValidatePagination(
		fiber.Query(c, "page", 1),
		fiber.Query(c, "limit", 10),
	)

	params := model.VideoListParams{
		Query:   fiber.Query[string](c, "query"),
		SortBy:  fiber.Query(c, "sortBy", "createdAt"),
		SortAsc: fiber.Query[string](c, "sortType") == "asc",
		Page:    page,
		Limit:   limit,
	}

	if raw := fiber.Query[string](c, "userId"); raw != "" {
		ownerID, errMsg := middleware.ValidateID(raw, "userId")
		if errMsg != "" {
			return Fail(c, fiber.StatusBadRequest, errMsg)
		}
		params.OwnerID = &ownerID
	}

	result, err := h.videos.List(c.Context(), params, middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, result, "Videos fetched successfully")
}

// Publish handles POST /api/v1/videos.
// Multipart form: title, description, duration, videoFile, thumbnail.
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return Fail(c, fiber.StatusBadRequest, "title and description are required")
	}

	// The object store cannot probe media, so clients report the duration.
	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "video file is required")
	}
	thumbFile, err := c.FormFile("thumbnail")
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "thumbnail file is required")
	}

	videoURL, err := h.media.UploadVideo(c.Context(), videoFile)
	if err != nil {
		return ServiceError(c, err)
	}
	thumbURL, err := h.media.UploadImage(c.Context(), thumbFile)
	if err != nil {
		return ServiceError(c, err)
	}

	video, err := h.videos.Publish(c.Context(), middleware.UserID(c),
		title, description, videoURL, thumbURL, duration)
	if err != nil {
		return ServiceError(c, err)
	}
	Metrics.UploadsTotal.WithLabelValues("video").Inc()
	return Success(c, fiber.StatusCreated, video, "Video published successfully")
}

// Get handles GET /api/v1/videos/:videoId.
func (h *VideoHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	video, err := h.videos.Get(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, video, "Video fetched successfully")
}

// Update handles PATCH /api/v1/videos/:videoId.
// Accepts JSON fields title/description plus an optional thumbnail file.
func (h *VideoHandler) Update(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	title := c.FormValue("title")
	description := c.FormValue("description")

	var thumbURL string
	if fh, err := c.FormFile("thumbnail"); err == nil {
		thumbURL, err = h.media.UploadImage(c.Context(), fh)
		if err != nil {
			return ServiceError(c, err)
		}
	}

	video, err := h.videos.Update(c.Context(), id, middleware.UserID(c), title, description, thumbURL)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, video, "Video updated successfully")
}

// Delete handles DELETE /api/v1/videos/:videoId.
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.videos.Delete(c.Context(), id, middleware.UserID(c)); err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, fiber.Map{}, "Video deleted successfully")
}

// TogglePublish handles PATCH /api/v1/videos/toggle/publish/:videoId.
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	published, err := h.videos.TogglePublish(c.Context(), id, middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, fiber.Map{"isPublished": published}, "Publish state toggled")
}

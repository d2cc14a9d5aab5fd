package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

type CommentHandler struct {
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type commentBody struct {
	Content string `json:"content"`
}

// ListForVideo handles GET /api/v1/comments/:videoId.
func (h *CommentHandler) ListForVideo(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	page, limit := middleware.ValidatePagination(
		fiber.Query(c, "page", 1),
		fiber.Query(c, "limit", 10),
	)

	result, err := h.comments.ListForVideo(c.Context(), videoID, middleware.UserID(c), page, limit)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, result, "Comments fetched successfully")
}

// Add handles POST /api/v1/comments/:videoId.
func (h *CommentHandler) Add(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	var body commentBody
	if err := c.Bind().JSON(&body); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	content, errMsg := middleware.ValidateContent(body.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	comment, err := h.comments.Add(c.Context(), videoID, middleware.UserID(c), content)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusCreated, comment, "Comment added successfully")
}

// Update handles PATCH /api/v1/comments/c/:commentId.
func (h *CommentHandler) Update(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	var body commentBody
	if err := c.Bind().JSON(&body); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	content, errMsg := middleware.ValidateContent(body.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	comment, err := h.comments.Update(c.Context(), commentID, middleware.UserID(c), content)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, comment, "Comment updated successfully")
}

// Delete handles DELETE /api/v1/comments/c/:commentId.
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.comments.Delete(c.Context(), commentID, middleware.UserID(c)); err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, fiber.Map{}, "Comment deleted successfully")
}

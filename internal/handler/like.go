package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

type LikeHandler struct {
	likes *service.LikeService
}

func NewLikeHandler(likes *service.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func toggleMessage(liked bool) string {
	if liked {
		return "added"
	}
	return "removed"
}

// ToggleVideo handles POST /api/v1/likes/toggle/v/:videoId.
func (h *LikeHandler) ToggleVideo(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	liked, err := h.likes.ToggleVideo(c.Context(), videoID, middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	Metrics.TogglesTotal.WithLabelValues("video").Inc()
	return Success(c, fiber.StatusOK, fiber.Map{"state": toggleMessage(liked)}, "Video like toggled")
}

// ToggleComment handles POST /api/v1/likes/toggle/c/:commentId.
func (h *LikeHandler) ToggleComment(c fiber.Ctx) error {
	commentID, errMsg := middleware.ValidateID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	liked, err := h.likes.ToggleComment(c.Context(), commentID, middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	Metrics.TogglesTotal.WithLabelValues("comment").Inc()
	return Success(c, fiber.StatusOK, fiber.Map{"state": toggleMessage(liked)}, "Comment like toggled")
}

// ToggleTweet handles POST /api/v1/likes/toggle/t/:tweetId.
func (h *LikeHandler) ToggleTweet(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	liked, err := h.likes.ToggleTweet(c.Context(), tweetID, middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	Metrics.TogglesTotal.WithLabelValues("tweet").Inc()
	return Success(c, fiber.StatusOK, fiber.Map{"state": toggleMessage(liked)}, "Tweet like toggled")
}

// LikedVideos handles GET /api/v1/likes/videos.
func (h *LikeHandler) LikedVideos(c fiber.Ctx) error {
	videos, err := h.likes.LikedVideos(c.Context(), middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, videos, "Liked videos fetched successfully")
}

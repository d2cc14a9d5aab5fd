package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

type TweetHandler struct {
	tweets *service.TweetService
}

func NewTweetHandler(tweets *service.TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

type tweetBody struct {
	Content string `json:"content"`
}

// Create handles POST /api/v1/tweets.
func (h *TweetHandler) Create(c fiber.Ctx) error {
	var body tweetBody
	if err := c.Bind().JSON(&body); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	content, errMsg := middleware.ValidateContent(body.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	tweet, err := h.tweets.Create(c.Context(), middleware.UserID(c), content)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusCreated, tweet, "Tweet created successfully")
}

// ListForUser handles GET /api/v1/tweets/user/:userId.
func (h *TweetHandler) ListForUser(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	tweets, err := h.tweets.ListForUser(c.Context(), userID)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, tweets, "Tweets fetched successfully")
}

// Update handles PATCH /api/v1/tweets/:tweetId.
func (h *TweetHandler) Update(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	var body tweetBody
	if err := c.Bind().JSON(&body); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	content, errMsg := middleware.ValidateContent(body.Content)
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	tweet, err := h.tweets.Update(c.Context(), tweetID, middleware.UserID(c), content)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, tweet, "Tweet updated successfully")
}

// Delete handles DELETE /api/v1/tweets/:tweetId.
func (h *TweetHandler) Delete(c fiber.Ctx) error {
	tweetID, errMsg := middleware.ValidateID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	if err := h.tweets.Delete(c.Context(), tweetID, middleware.UserID(c)); err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, fiber.Map{}, "Tweet deleted successfully")
}

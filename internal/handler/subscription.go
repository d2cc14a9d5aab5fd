package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

type SubscriptionHandler struct {
	subs *service.SubscriptionService
}

func NewSubscriptionHandler(subs *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

// Toggle handles POST /api/v1/subscriptions/c/:channelId.
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateID(c.Params("channelId"), "channelId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	subscribed, err := h.subs.Toggle(c.Context(), middleware.UserID(c), channelID)
	if err != nil {
		return ServiceError(c, err)
	}

	Metrics.TogglesTotal.WithLabelValues("subscription").Inc()

	state := "removed"
	if subscribed {
		state = "added"
	}
	return Success(c, fiber.StatusOK, fiber.Map{"state": state}, "Subscription toggled")
}

// Subscribers handles GET /api/v1/subscriptions/c/:channelId.
func (h *SubscriptionHandler) Subscribers(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateID(c.Params("channelId"), "channelId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	subs, err := h.subs.Subscribers(c.Context(), channelID)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, subs, "Subscribers fetched successfully")
}

// SubscribedChannels handles GET /api/v1/subscriptions/u/:subscriberId.
func (h *SubscriptionHandler) SubscribedChannels(c fiber.Ctx) error {
	subscriberID, errMsg := middleware.ValidateID(c.Params("subscriberId"), "subscriberId")
	if errMsg != "" {
		return Fail(c, fiber.StatusBadRequest, errMsg)
	}

	subs, err := h.subs.SubscribedChannels(c.Context(), subscriberID)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, subs, "Subscribed channels fetched successfully")
}

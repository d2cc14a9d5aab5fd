package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

// DashboardHandler serves the authenticated channel owner's dashboard.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /api/v1/dashboard/stats.
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.Context(), middleware.UserID(c))
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

// Videos handles GET /api/v1/dashboard/videos.
func (h *DashboardHandler) Videos(c fiber.Ctx) error {
	page, limit := middleware.ValidatePagination(
		fiber.Query(c, "page", 1),
		fiber.Query(c, "limit", 10),
	)

	result, err := h.dashboard.Videos(c.Context(), middleware.UserID(c), page, limit)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, fiber.StatusOK, result, "Channel videos fetched successfully")
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/repository"
)

// DashboardHandler aggregates the counters and recent activity shown on
// the admin landing page.
type DashboardHandler struct {
	Cfg          config.Config
	Reservations *repository.ReservationRepo
	Menu         *repository.MenuRepo
	Reviews      *repository.ReviewRepo
}

func NewDashboardHandler(cfg config.Config, res *repository.ReservationRepo, menu *repository.MenuRepo, rev *repository.ReviewRepo) *DashboardHandler {
	return &DashboardHandler{Cfg: cfg, Reservations: res, Menu: menu, Reviews: rev}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	resStats, err := h.Reservations.CountStats(ctx, time.Now())
	if err != nil {
		return internalError(c, h.Cfg, "could not load dashboard", err)
	}
	totalItems, availableItems, popularItems, activeCategories, err := h.Menu.CountStats(ctx)
	if err != nil {
		return internalError(c, h.Cfg, "could not load dashboard", err)
	}
	reviewStats, err := h.Reviews.CountStats(ctx)
	if err != nil {
		return internalError(c, h.Cfg, "could not load dashboard", err)
	}
	recentReservations, err := h.Reservations.Recent(ctx, 5)
	if err != nil {
		return internalError(c, h.Cfg, "could not load dashboard", err)
	}
	recentReviews, err := h.Reviews.ListVisible(ctx, 1, 3)
	if err != nil {
		return internalError(c, h.Cfg, "could not load dashboard", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats": echo.Map{
			"reservations": resStats,
			"menu": echo.Map{
				"totalItems":       totalItems,
				"availableItems":   availableItems,
				"popularItems":     popularItems,
				"activeCategories": activeCategories,
			},
			"reviews": reviewStats,
		},
		"recentReservations": recentReservations,
		"recentReviews":      recentReviews,
	})
}

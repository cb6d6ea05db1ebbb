package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/handler"
)

// RegisterReviews registers the review endpoints under /api/reviews. The
// public listing is cached; the /admin subtree covers moderation, manual
// entry and the Google sync trigger.
func RegisterReviews(e *echo.Echo, h *handler.ReviewHandler, requireAdmin, cache echo.MiddlewareFunc) {
	g := e.Group("/api/reviews")
	g.GET("", h.ListPublic, cache)

	a := g.Group("/admin", requireAdmin)
	a.GET("", h.ListAdmin)
	a.POST("", h.CreateManual)
	a.PATCH("/:id/toggle-visibility", h.ToggleVisibility)
	a.DELETE("/:id", h.Delete)
	a.POST("/sync-google", h.SyncGoogle)
}

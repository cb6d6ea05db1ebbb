package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/handler"
)

// RegisterReservations registers the reservation endpoints under
// /api/reservations. Submission is rate limited so a single client cannot
// flood the inbox with bookings; the status lookup stays open so guests can
// check their booking without an account. Everything under /admin requires a
// valid access token belonging to an active admin.
func RegisterReservations(
	e *echo.Echo,
	pub *handler.ReservationHandler,
	adm *handler.AdminReservationHandler,
	requireAdmin, rateLimit echo.MiddlewareFunc,
) {
	g := e.Group("/api/reservations")
	g.POST("", pub.Create, rateLimit)
	g.GET("/status/:id", pub.GetStatus)

	a := g.Group("/admin", requireAdmin)
	a.GET("", adm.List)
	a.GET("/stats", adm.Stats)
	a.PATCH("/:id/status", adm.UpdateStatus)
	a.DELETE("/:id", adm.Delete)
}

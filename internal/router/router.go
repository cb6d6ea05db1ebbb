package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probes hit this endpoint to verify the
	// service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Login lives under
// /api/auth and does not require a session; /api/auth/me is protected by the
// provided middleware so only a logged-in admin can read their own profile.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, requireAdmin echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, requireAdmin)
}

// RegisterDashboard registers the admin landing page aggregate at
// /api/admin/dashboard.
func RegisterDashboard(e *echo.Echo, d *handler.DashboardHandler, requireAdmin echo.MiddlewareFunc) {
	e.GET("/api/admin/dashboard", d.Dashboard, requireAdmin)
}

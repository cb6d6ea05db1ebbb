package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/handler"
)

// RegisterMenu registers the menu endpoints under /api/menu. The public
// listings are served through the response cache since they change rarely and
// are requested on every page load. The /admin subtree carries the full
// category and item management surface.
func RegisterMenu(
	e *echo.Echo,
	pub *handler.MenuHandler,
	adm *handler.AdminMenuHandler,
	requireAdmin, cache echo.MiddlewareFunc,
) {
	g := e.Group("/api/menu")
	g.GET("/categories", pub.Categories, cache)
	g.GET("/popular", pub.Popular, cache)

	a := g.Group("/admin", requireAdmin)
	a.GET("/categories", adm.ListCategories)
	a.POST("/categories", adm.CreateCategory)
	a.PUT("/categories/:id", adm.UpdateCategory)
	a.DELETE("/categories/:id", adm.DeleteCategory)

	a.GET("/items", adm.ListItems)
	a.POST("/items", adm.CreateItem)
	a.PUT("/items/:id", adm.UpdateItem)
	a.DELETE("/items/:id", adm.DeleteItem)
	a.PATCH("/items/:id/toggle-availability", adm.ToggleAvailability)
	a.PATCH("/items/:id/toggle-popular", adm.TogglePopular)
}

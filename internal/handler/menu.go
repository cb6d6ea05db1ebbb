package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
)

// MenuHandler serves the public menu endpoints. Both are fronted by the
// Redis response cache; the payloads are identical for every visitor.
type MenuHandler struct {
	Cfg  config.Config
	Repo *repository.MenuRepo
}

func NewMenuHandler(cfg config.Config, repo *repository.MenuRepo) *MenuHandler {
	return &MenuHandler{Cfg: cfg, Repo: repo}
}

// Categories handles GET /api/menu/categories: active categories with
// their available items, in display order.
func (h *MenuHandler) Categories(c echo.Context) error {
	ctx := c.Request().Context()
	categories, err := h.Repo.ListCategories(ctx, true)
	if err != nil {
		return internalError(c, h.Cfg, "could not load menu", err)
	}
	out := make([]model.CategoryWithItems, 0, len(categories))
	for _, cat := range categories {
		items, err := h.Repo.ListItemsByCategory(ctx, cat.ID, true)
		if err != nil {
			return internalError(c, h.Cfg, "could not load menu", err)
		}
		out = append(out, model.CategoryWithItems{MenuCategory: cat, Items: items})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"categories": out,
	})
}

// Popular handles GET /api/menu/popular: up to eight available items
// flagged as popular.
func (h *MenuHandler) Popular(c echo.Context) error {
	items, err := h.Repo.ListPopular(c.Request().Context(), 8)
	if err != nil {
		return internalError(c, h.Cfg, "could not load popular items", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"items":   items,
	})
}

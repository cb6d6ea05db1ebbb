package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
	"github.com/lunabrew/restaurant-backend/internal/upload"
)

// AdminMenuHandler serves the staff-facing menu management endpoints.
// Item create/update accepts multipart forms so an image can ride along;
// images are validated before anything touches disk and stored under the
// upload directory with a UUID filename.
type AdminMenuHandler struct {
	Cfg  config.Config
	Repo *repository.MenuRepo
}

func NewAdminMenuHandler(cfg config.Config, repo *repository.MenuRepo) *AdminMenuHandler {
	return &AdminMenuHandler{Cfg: cfg, Repo: repo}
}

// ---- Categories ----

// ListCategories handles GET /api/menu/admin/categories (all categories,
// hidden ones included).
func (h *AdminMenuHandler) ListCategories(c echo.Context) error {
	categories, err := h.Repo.ListCategories(c.Request().Context(), false)
	if err != nil {
		return internalError(c, h.Cfg, "could not load categories", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "categories": categories})
}

type categoryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

// CreateCategory handles POST /api/menu/admin/categories.
func (h *AdminMenuHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "category name required")
	}
	cat := model.MenuCategory{
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.Repo.CreateCategory(c.Request().Context(), &cat); err != nil {
		return internalError(c, h.Cfg, "could not create category", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"message":  "category created",
		"category": cat,
	})
}

// UpdateCategory handles PUT /api/menu/admin/categories/:id.
func (h *AdminMenuHandler) UpdateCategory(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "category not found")
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "category name required")
	}
	cat := model.MenuCategory{
		ID:          id,
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.Repo.UpdateCategory(c.Request().Context(), cat); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusNotFound, "category not found")
		}
		return internalError(c, h.Cfg, "could not update category", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "category updated",
		"category": cat,
	})
}

// DeleteCategory handles DELETE /api/menu/admin/categories/:id. A
// category that still contains items cannot be deleted.
func (h *AdminMenuHandler) DeleteCategory(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "category not found")
	}
	if err := h.Repo.DeleteCategory(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotEmpty):
			return fail(c, http.StatusBadRequest, "category with items cannot be deleted")
		case errors.Is(err, sql.ErrNoRows):
			return fail(c, http.StatusNotFound, "category not found")
		}
		return internalError(c, h.Cfg, "could not delete category", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "category deleted"})
}

// ---- Items ----

// ListItems handles GET /api/menu/admin/items with category/search
// filters and pagination.
func (h *AdminMenuHandler) ListItems(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 20
	}
	categoryID, _ := strconv.ParseUint(c.QueryParam("category"), 10, 64)

	items, total, err := h.Repo.SearchItems(c.Request().Context(), repository.ItemFilter{
		CategoryID: categoryID,
		Search:     c.QueryParam("search"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return internalError(c, h.Cfg, "could not load items", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"items":   items,
		"pagination": echo.Map{
			"current": page,
			"pages":   (total + limit - 1) / limit,
			"total":   total,
		},
	})
}

// CreateItem handles POST /api/menu/admin/items (multipart form with an
// optional "image" part).
func (h *AdminMenuHandler) CreateItem(c echo.Context) error {
	item, errMsg := h.bindItemForm(c)
	if errMsg != "" {
		return fail(c, http.StatusBadRequest, errMsg)
	}
	if err := h.Repo.CreateItem(c.Request().Context(), &item); err != nil {
		return internalError(c, h.Cfg, "could not create item", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "menu item created",
		"item":    item,
	})
}

// UpdateItem handles PUT /api/menu/admin/items/:id.
func (h *AdminMenuHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "menu item not found")
	}
	item, errMsg := h.bindItemForm(c)
	if errMsg != "" {
		return fail(c, http.StatusBadRequest, errMsg)
	}
	item.ID = id
	if err := h.Repo.UpdateItem(c.Request().Context(), item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusNotFound, "menu item not found")
		}
		return internalError(c, h.Cfg, "could not update item", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "menu item updated",
		"item":    item,
	})
}

// DeleteItem handles DELETE /api/menu/admin/items/:id.
func (h *AdminMenuHandler) DeleteItem(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "menu item not found")
	}
	if err := h.Repo.DeleteItem(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusNotFound, "menu item not found")
		}
		return internalError(c, h.Cfg, "could not delete item", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "menu item deleted"})
}

// ToggleAvailability handles PATCH /api/menu/admin/items/:id/toggle-availability.
func (h *AdminMenuHandler) ToggleAvailability(c echo.Context) error {
	return h.toggleItemFlag(c, "availability",
		func(it *model.MenuItem) *bool { return &it.IsAvailable },
		h.Repo.SetItemAvailability)
}

// TogglePopular handles PATCH /api/menu/admin/items/:id/toggle-popular.
func (h *AdminMenuHandler) TogglePopular(c echo.Context) error {
	return h.toggleItemFlag(c, "popularity",
		func(it *model.MenuItem) *bool { return &it.IsPopular },
		h.Repo.SetItemPopular)
}

func (h *AdminMenuHandler) toggleItemFlag(c echo.Context, what string,
	flag func(*model.MenuItem) *bool,
	set func(context.Context, uint64, bool) error,
) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "menu item not found")
	}
	ctx := c.Request().Context()
	item, err := h.Repo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusNotFound, "menu item not found")
		}
		return internalError(c, h.Cfg, "could not load item", err)
	}
	f := flag(&item)
	*f = !*f
	if err := set(ctx, id, *f); err != nil {
		return internalError(c, h.Cfg, "could not update item", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "item " + what + " updated",
		"item":    item,
	})
}

// bindItemForm reads the multipart item form. It returns a non-empty
// message on validation failure.
func (h *AdminMenuHandler) bindItemForm(c echo.Context) (model.MenuItem, string) {
	name := strings.TrimSpace(c.FormValue("name"))
	description := strings.TrimSpace(c.FormValue("description"))
	categoryID, _ := strconv.ParseUint(c.FormValue("categoryId"), 10, 64)
	if name == "" {
		return model.MenuItem{}, "item name required"
	}
	if description == "" {
		return model.MenuItem{}, "item description required"
	}
	if categoryID == 0 {
		return model.MenuItem{}, "valid category required"
	}

	item := model.MenuItem{
		CategoryID:       categoryID,
		Name:             name,
		Description:      description,
		PriceSingleCents: formPrice(c, "priceSingleCents"),
		PriceMediumCents: formPrice(c, "priceMediumCents"),
		PriceLargeCents:  formPrice(c, "priceLargeCents"),
		IsAvailable:      formBool(c, "isAvailable", true),
		IsPopular:        formBool(c, "isPopular", false),
		IsVegetarian:     formBool(c, "isVegetarian", false),
		IsVegan:          formBool(c, "isVegan", false),
		IsGlutenFree:     formBool(c, "isGlutenFree", false),
	}
	item.SortOrder, _ = strconv.Atoi(c.FormValue("order"))
	item.PrepMinutes, _ = strconv.Atoi(c.FormValue("preparationTime"))
	if item.PrepMinutes == 0 {
		item.PrepMinutes = 15
	}
	item.Image = strings.TrimSpace(c.FormValue("image"))

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		path, msg := h.saveImage(file)
		if msg != "" {
			return model.MenuItem{}, msg
		}
		item.Image = path
	}
	return item, ""
}

// saveImage validates and stores an uploaded image, returning its public
// path or a rejection message.
func (h *AdminMenuHandler) saveImage(file *multipart.FileHeader) (string, string) {
	res := upload.Validate(file.Filename, file.Header.Get("Content-Type"), file.Size)
	if !res.OK {
		return "", res.Message
	}
	src, err := file.Open()
	if err != nil {
		return "", "could not read uploaded file"
	}
	defer src.Close()

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		return "", "could not store uploaded file"
	}
	name := uuid.NewString() + res.Ext
	dst, err := os.Create(filepath.Join(h.Cfg.UploadDir, name))
	if err != nil {
		return "", "could not store uploaded file"
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", "could not store uploaded file"
	}
	return "/uploads/" + name, ""
}

func formPrice(c echo.Context, key string) *uint32 {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	p := uint32(n)
	return &p
}

func formBool(c echo.Context, key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(c.FormValue(key))) {
	case "true", "1", "on":
		return true
	case "false", "0", "off":
		return false
	}
	return def
}

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
	"github.com/lunabrew/restaurant-backend/internal/service"
)

// ReviewHandler serves the public review listing and the staff review
// management endpoints, including the Google sync trigger.
type ReviewHandler struct {
	Cfg  config.Config
	Repo *repository.ReviewRepo
	Sync *service.ReviewSyncService
}

func NewReviewHandler(cfg config.Config, repo *repository.ReviewRepo, sync *service.ReviewSyncService) *ReviewHandler {
	return &ReviewHandler{Cfg: cfg, Repo: repo, Sync: sync}
}

// ListPublic handles GET /api/reviews: the three newest visible reviews
// rated four stars or better, served through the response cache.
func (h *ReviewHandler) ListPublic(c echo.Context) error {
	reviews, err := h.Repo.ListVisible(c.Request().Context(), 4, 3)
	if err != nil {
		return internalError(c, h.Cfg, "could not load reviews", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"reviews": reviews,
	})
}

// ListAdmin handles GET /api/reviews/admin with rating/source/search
// filters, pagination and the aggregate counters.
func (h *ReviewHandler) ListAdmin(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 20
	}
	rating, _ := strconv.Atoi(c.QueryParam("rating"))

	ctx := c.Request().Context()
	reviews, total, err := h.Repo.Search(ctx, repository.ReviewFilter{
		Rating: rating,
		Source: c.QueryParam("source"),
		Search: c.QueryParam("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return internalError(c, h.Cfg, "could not load reviews", err)
	}
	stats, err := h.Repo.CountStats(ctx)
	if err != nil {
		return internalError(c, h.Cfg, "could not load review stats", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"reviews": reviews,
		"stats":   stats,
		"pagination": echo.Map{
			"current": page,
			"pages":   (total + limit - 1) / limit,
			"total":   total,
		},
	})
}

// ToggleVisibility handles PATCH /api/reviews/admin/:id/toggle-visibility.
func (h *ReviewHandler) ToggleVisibility(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "review not found")
	}
	ctx := c.Request().Context()
	review, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusNotFound, "review not found")
		}
		return internalError(c, h.Cfg, "could not load review", err)
	}
	review.IsVisible = !review.IsVisible
	if err := h.Repo.SetVisibility(ctx, id, review.IsVisible); err != nil {
		return internalError(c, h.Cfg, "could not update review", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "review visibility updated",
		"review":  review,
	})
}

// CreateManual handles POST /api/reviews/admin: a hand-entered review,
// visible immediately unless the request says otherwise.
func (h *ReviewHandler) CreateManual(c echo.Context) error {
	var req struct {
		AuthorName string `json:"authorName"`
		Text       string `json:"text"`
		Rating     int    `json:"rating"`
		IsVisible  *bool  `json:"isVisible"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.AuthorName = strings.TrimSpace(req.AuthorName)
	req.Text = strings.TrimSpace(req.Text)
	if req.AuthorName == "" || req.Text == "" || req.Rating < 1 || req.Rating > 5 {
		return fail(c, http.StatusBadRequest, "author name, text and a rating between 1 and 5 are required")
	}
	review := &model.Review{
		AuthorName: req.AuthorName,
		Text:       req.Text,
		Rating:     req.Rating,
		Source:     model.ReviewSourceManual,
		IsVisible:  true,
		ReviewDate: time.Now(),
	}
	if req.IsVisible != nil {
		review.IsVisible = *req.IsVisible
	}
	if err := h.Repo.Create(c.Request().Context(), review); err != nil {
		return internalError(c, h.Cfg, "could not create review", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "review created",
		"review":  review,
	})
}

// Delete handles DELETE /api/reviews/admin/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "review not found")
	}
	if err := h.Repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusNotFound, "review not found")
		}
		return internalError(c, h.Cfg, "could not delete review", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "review deleted",
	})
}

// SyncGoogle handles POST /api/reviews/admin/sync-google. Sync failures
// are reported to the admin as a 400 envelope; the system stays usable
// either way.
func (h *ReviewHandler) SyncGoogle(c echo.Context) error {
	result, err := h.Sync.Sync(c.Request().Context())
	if err != nil {
		var se *service.SyncError
		switch {
		case errors.Is(err, service.ErrSyncUnavailable):
			return fail(c, http.StatusBadRequest, "google reviews api not configured")
		case errors.As(err, &se):
			return fail(c, http.StatusBadRequest, "google reviews could not be synced")
		}
		return internalError(c, h.Cfg, "could not sync reviews", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      fmt.Sprintf("%d new reviews synced", result.NewReviews),
		"newReviews":   result.NewReviews,
		"totalReviews": result.TotalFetched,
	})
}

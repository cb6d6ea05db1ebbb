package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/middleware"
	"github.com/lunabrew/restaurant-backend/internal/repository"
	"github.com/lunabrew/restaurant-backend/internal/service"
)

// AdminReservationHandler serves the staff-facing reservation endpoints.
// All routes are registered behind the credential middleware; handlers
// assume an authenticated admin is present in the context.
type AdminReservationHandler struct {
	Cfg  config.Config
	Svc  *service.ReservationService
	Repo *repository.ReservationRepo // dashboard counters bypass the service
}

func NewAdminReservationHandler(cfg config.Config, svc *service.ReservationService, repo *repository.ReservationRepo) *AdminReservationHandler {
	return &AdminReservationHandler{Cfg: cfg, Svc: svc, Repo: repo}
}

// List handles GET /api/reservations/admin with status/date/search
// filters and pagination.
func (h *AdminReservationHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	q := service.Query{
		Status: c.QueryParam("status"),
		Date:   c.QueryParam("date"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	}
	items, pagination, err := h.Svc.Search(c.Request().Context(), q)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return failValidation(c, ve)
		}
		return internalError(c, h.Cfg, "could not load reservations", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"reservations": items,
		"pagination":   pagination,
	})
}

type updateStatusReq struct {
	Status      string `json:"status"`
	AdminNotes  string `json:"adminNotes"`
	TableNumber string `json:"tableNumber"`
}

// UpdateStatus handles PATCH /api/reservations/admin/:id/status. The
// acting admin is recorded as the last modifier and the customer is
// notified of the change through the queue.
func (h *AdminReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "reservation not found")
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	adminID, ok := middleware.AdminID(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	rv, err := h.Svc.UpdateStatus(c.Request().Context(), id, req.Status, req.AdminNotes, req.TableNumber, adminID)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return failValidation(c, ve)
		case errors.Is(err, service.ErrNotFound):
			return fail(c, http.StatusNotFound, "reservation not found")
		}
		return internalError(c, h.Cfg, "could not update reservation", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "reservation status updated",
		"reservation": rv,
	})
}

// Delete handles DELETE /api/reservations/admin/:id, an unconditional
// destructive removal.
func (h *AdminReservationHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "reservation not found")
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fail(c, http.StatusNotFound, "reservation not found")
		}
		return internalError(c, h.Cfg, "could not delete reservation", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "reservation deleted",
	})
}

// Stats handles GET /api/reservations/admin/stats.
func (h *AdminReservationHandler) Stats(c echo.Context) error {
	stats, err := h.Repo.CountStats(c.Request().Context(), time.Now())
	if err != nil {
		return internalError(c, h.Cfg, "could not load stats", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"stats":   stats,
	})
}

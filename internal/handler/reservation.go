package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/service"
)

// ReservationHandler serves the public reservation endpoints: creating a
// booking and checking its status by id.
type ReservationHandler struct {
	Cfg config.Config
	Svc *service.ReservationService
}

func NewReservationHandler(cfg config.Config, svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Cfg: cfg, Svc: svc}
}

// Create handles POST /api/reservations. On success the response echoes
// the booking facts plus the generated confirmation code; the customer
// notification is queued in the background and never gates the response.
func (h *ReservationHandler) Create(c echo.Context) error {
	var in service.CreateInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	rv, err := h.Svc.Create(c.Request().Context(), in)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return failValidation(c, ve)
		}
		return internalError(c, h.Cfg, "could not create reservation", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":     true,
		"message":     "reservation received, we will get back to you shortly",
		"reservation": rv,
	})
}

// GetStatus handles GET /api/reservations/status/:id. It returns the
// reduced projection without customer contact details.
func (h *ReservationHandler) GetStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return fail(c, http.StatusNotFound, "reservation not found")
	}
	summary, err := h.Svc.GetSummary(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fail(c, http.StatusNotFound, "reservation not found")
		}
		return internalError(c, h.Cfg, "could not load reservation", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"reservation": summary,
	})
}

// Package handler contains the Echo HTTP handlers. Every response uses
// the uniform envelope {success, message?, ...payload}; failures never
// leak internals unless the app runs outside production mode.
package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/service"
)

// fail writes a failure envelope with the given status and message.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "message": msg})
}

// failValidation writes the 400 envelope carrying field-level messages.
func failValidation(c echo.Context, ve *service.ValidationError) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"success": false,
		"message": "validation failed",
		"errors":  ve.Fields,
	})
}

// internalError logs err and writes a generic 500 envelope. Outside prod
// the underlying error is echoed for easier debugging.
func internalError(c echo.Context, cfg config.Config, msg string, err error) error {
	log.Printf("%s %s: %s: %v", c.Request().Method, c.Path(), msg, err)
	body := echo.Map{"success": false, "message": msg}
	if !cfg.IsProd() && err != nil {
		body["error"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

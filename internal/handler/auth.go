package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/middleware"
	"github.com/lunabrew/restaurant-backend/internal/repository"
	"github.com/lunabrew/restaurant-backend/internal/utils"
)

// AuthHandler bundles dependencies for the admin login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies admin credentials and returns a signed access token
// with the sanitized account. Inactive accounts cannot log in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		return internalError(c, h.Cfg, "login failed", err)
	}
	if !u.IsActive || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return internalError(c, h.Cfg, "login failed", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   access.Token,
		"expires": access.Exp,
		"user":    u.Public(),
	})
}

// Me returns the authenticated admin's account, resolved by the
// credential middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    c.Get(middleware.CtxAccount),
	})
}

package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/model"
)

// Context keys populated by RequireAdmin for downstream handlers.
const (
	CtxUserID  = "user_id" // uint64 account id from the token subject
	CtxRole    = "role"    // role claim string
	CtxAccount = "account" // model.UserPublic of the resolved account
)

// AccountSource resolves a token subject to a stored account. Satisfied
// by *repository.UserRepo; tests substitute a fake.
type AccountSource interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// RequireAdmin returns an Echo middleware gating the admin surface. It
// validates the Bearer access token (HS256 signature and expiry), then
// resolves the embedded account id and requires the account to exist and
// be active. On success the sanitized account and claims land in the
// request context; every failure short-circuits with a 401 envelope
// carrying only a generic message.
func RequireAdmin(secret string, accounts AccountSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "access denied, token missing",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return invalidToken(c)
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return invalidToken(c)
			}
			uid, ok := subjectID(claims)
			if !ok {
				return invalidToken(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			account, err := accounts.GetByID(ctx, uid)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) {
					log.Printf("auth: account lookup failed: %v", err)
				}
				return invalidToken(c)
			}
			if !account.IsActive {
				return invalidToken(c)
			}

			c.Set(CtxUserID, account.ID)
			c.Set(CtxRole, account.Role)
			c.Set(CtxAccount, account.Public())
			return next(c)
		}
	}
}

func invalidToken(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false, "message": "invalid token or inactive account",
	})
}

// subjectID extracts the account id from the sub claim. Numeric claims
// decode as float64; some issuers encode numbers as strings.
func subjectID(claims jwt.MapClaims) (uint64, bool) {
	switch v := claims["sub"].(type) {
	case float64:
		if v > 0 {
			return uint64(v), true
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// AdminID returns the authenticated account id stored by RequireAdmin.
func AdminID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(CtxUserID).(uint64)
	return id, ok
}

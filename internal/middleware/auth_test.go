package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/utils"
)

const testSecret = "test-secret"

// fakeAccounts implements AccountSource backed by a map.
type fakeAccounts struct {
	users map[uint64]model.User
}

func (f *fakeAccounts) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func runRequireAdmin(t *testing.T, accounts AccountSource, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	if err := RequireAdmin(testSecret, accounts)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, reached
}

func TestRequireAdmin(t *testing.T) {
	active := &fakeAccounts{users: map[uint64]model.User{
		1: {ID: 1, Name: "Admin", Email: "admin@lunabrew.com", Role: "admin", IsActive: true},
		2: {ID: 2, Name: "Former", Email: "former@lunabrew.com", Role: "admin", IsActive: false},
	}}

	t.Run("Given no Authorization header When requested Then 401 without reaching the handler", func(t *testing.T) {
		rec, reached := runRequireAdmin(t, active, "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		if reached {
			t.Error("handler should not be reached")
		}
	})

	t.Run("Given a garbage token When requested Then 401", func(t *testing.T) {
		rec, reached := runRequireAdmin(t, active, "Bearer not.a.token")
		if rec.Code != http.StatusUnauthorized || reached {
			t.Errorf("expected rejection, got code=%d reached=%v", rec.Code, reached)
		}
	})

	t.Run("Given an expired token When requested Then 401", func(t *testing.T) {
		// Given
		claims := jwt.MapClaims{
			"sub":  float64(1),
			"role": "admin",
			"exp":  time.Now().Add(-time.Minute).Unix(),
			"iat":  time.Now().Add(-time.Hour).Unix(),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		// When / Then
		rec, reached := runRequireAdmin(t, active, "Bearer "+raw)
		if rec.Code != http.StatusUnauthorized || reached {
			t.Errorf("expected rejection, got code=%d reached=%v", rec.Code, reached)
		}
	})

	t.Run("Given a token signed with another secret When requested Then 401", func(t *testing.T) {
		tok, err := utils.NewAccessToken("wrong-secret", 1, "admin", 15)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		rec, reached := runRequireAdmin(t, active, "Bearer "+tok.Token)
		if rec.Code != http.StatusUnauthorized || reached {
			t.Errorf("expected rejection, got code=%d reached=%v", rec.Code, reached)
		}
	})

	t.Run("Given a valid token for a deactivated account When requested Then 401", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, 2, "admin", 15)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		rec, reached := runRequireAdmin(t, active, "Bearer "+tok.Token)
		if rec.Code != http.StatusUnauthorized || reached {
			t.Errorf("expected rejection, got code=%d reached=%v", rec.Code, reached)
		}
	})

	t.Run("Given a valid token for an unknown account When requested Then 401", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, 99, "admin", 15)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		rec, reached := runRequireAdmin(t, active, "Bearer "+tok.Token)
		if rec.Code != http.StatusUnauthorized || reached {
			t.Errorf("expected rejection, got code=%d reached=%v", rec.Code, reached)
		}
	})

	t.Run("Given a valid token for an active account When requested Then the handler runs with context populated", func(t *testing.T) {
		// Given
		tok, err := utils.NewAccessToken(testSecret, 1, "admin", 15)
		if err != nil {
			t.Fatalf("token: %v", err)
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+tok.Token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		// When
		var gotID uint64
		var gotOK bool
		next := func(c echo.Context) error {
			gotID, gotOK = AdminID(c)
			return c.NoContent(http.StatusOK)
		}
		if err := RequireAdmin(testSecret, active)(next)(c); err != nil {
			t.Fatalf("middleware returned error: %v", err)
		}

		// Then
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotOK || gotID != 1 {
			t.Errorf("expected admin id 1 in context, got %d ok=%v", gotID, gotOK)
		}
	})
}

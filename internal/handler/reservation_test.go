package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/middleware"
	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/service"
)

func testConfig() config.Config {
	return config.Config{Env: "test", JWTSecret: "secret"}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestReservationHandler_Create(t *testing.T) {
	futureDate := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	t.Run("Given a valid submission When posted Then 201 with a confirmation code", func(t *testing.T) {
		// Given
		store := newStubReservationStore()
		svc := service.NewReservationService(store, &stubNotifier{})
		h := NewReservationHandler(testConfig(), svc)

		payload := `{"customerName":"Ayşe Yılmaz","customerEmail":"ayse@example.com",` +
			`"customerPhone":"+90 555 123 4567","date":"` + futureDate + `","time":"19:30","guests":"4"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		// When
		if err := h.Create(c); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		// Then
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["success"] != true {
			t.Error("expected success envelope")
		}
		rv, _ := body["reservation"].(map[string]any)
		code, _ := rv["confirmationCode"].(string)
		if !strings.HasPrefix(code, "LB") {
			t.Errorf("expected LB confirmation code, got %q", code)
		}
	})

	t.Run("Given an invalid submission When posted Then 400 with field errors", func(t *testing.T) {
		// Given
		svc := service.NewReservationService(newStubReservationStore(), &stubNotifier{})
		h := NewReservationHandler(testConfig(), svc)

		payload := `{"customerName":"A","customerEmail":"nope","date":"2001-01-01"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		// When
		if err := h.Create(c); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		// Then
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["success"] != false {
			t.Error("expected failure envelope")
		}
		if _, ok := body["errors"]; !ok {
			t.Errorf("expected field errors, got %v", body)
		}
	})
}

func TestReservationHandler_GetStatus(t *testing.T) {
	t.Run("Given an existing reservation When status requested Then 200 with the public projection", func(t *testing.T) {
		// Given
		store := newStubReservationStore()
		store.rows[1] = model.Reservation{
			ID:               1,
			ConfirmationCode: "LB12345678ABCD",
			CustomerName:     "Ayşe Yılmaz",
			CustomerEmail:    "ayse@example.com",
			Status:           model.StatusConfirmed,
			Date:             time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Time:             "19:30",
			Guests:           "4",
		}
		svc := service.NewReservationService(store, &stubNotifier{})
		h := NewReservationHandler(testConfig(), svc)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/reservations/status/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		// When
		if err := h.GetStatus(c); err != nil {
			t.Fatalf("GetStatus returned error: %v", err)
		}

		// Then
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "ayse@example.com") {
			t.Error("public status response must not leak contact details")
		}
	})

	t.Run("Given an unknown id When status requested Then 404", func(t *testing.T) {
		// Given
		svc := service.NewReservationService(newStubReservationStore(), &stubNotifier{})
		h := NewReservationHandler(testConfig(), svc)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/reservations/status/:id")
		c.SetParamNames("id")
		c.SetParamValues("404")

		// When
		if err := h.GetStatus(c); err != nil {
			t.Fatalf("GetStatus returned error: %v", err)
		}

		// Then
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAdminReservationHandler_UpdateStatus(t *testing.T) {
	t.Run("Given an unknown status When patched Then 400 and no update", func(t *testing.T) {
		// Given
		store := newStubReservationStore()
		store.rows[1] = model.Reservation{ID: 1, Status: model.StatusPending}
		svc := service.NewReservationService(store, &stubNotifier{})
		h := NewAdminReservationHandler(testConfig(), svc, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"approved"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/reservations/admin/:id/status")
		c.SetParamNames("id")
		c.SetParamValues("1")
		c.Set(middleware.CtxUserID, uint64(7))

		// When
		if err := h.UpdateStatus(c); err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}

		// Then
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if store.rows[1].Status != model.StatusPending {
			t.Errorf("status should be unchanged, got %q", store.rows[1].Status)
		}
	})

	t.Run("Given a valid transition When patched Then 200 and modifier recorded", func(t *testing.T) {
		// Given
		store := newStubReservationStore()
		store.rows[1] = model.Reservation{ID: 1, Status: model.StatusPending}
		notifier := &stubNotifier{}
		svc := service.NewReservationService(store, notifier)
		h := NewAdminReservationHandler(testConfig(), svc, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"confirmed","tableNumber":"5"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/reservations/admin/:id/status")
		c.SetParamNames("id")
		c.SetParamValues("1")
		c.Set(middleware.CtxUserID, uint64(7))

		// When
		if err := h.UpdateStatus(c); err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}

		// Then
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		updated := store.rows[1]
		if updated.Status != model.StatusConfirmed {
			t.Errorf("expected confirmed, got %q", updated.Status)
		}
		if updated.LastModifiedBy == nil || *updated.LastModifiedBy != 7 {
			t.Errorf("expected modifier 7, got %v", updated.LastModifiedBy)
		}
		if notifier.calls != 1 {
			t.Errorf("expected 1 notification, got %d", notifier.calls)
		}
	})
}

package handler

import (
	"context"
	"database/sql"

	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
)

// stubReservationStore implements service.ReservationStore with canned
// rows, enough to drive the handlers through the real service.
type stubReservationStore struct {
	rows    map[uint64]model.Reservation
	nextID  uint64
	saveErr error
}

func newStubReservationStore() *stubReservationStore {
	return &stubReservationStore{rows: map[uint64]model.Reservation{}, nextID: 1}
}

func (s *stubReservationStore) Create(_ context.Context, rv *model.Reservation) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	rv.ID = s.nextID
	s.nextID++
	s.rows[rv.ID] = *rv
	return nil
}

func (s *stubReservationStore) GetByID(_ context.Context, id uint64) (model.Reservation, error) {
	rv, ok := s.rows[id]
	if !ok {
		return model.Reservation{}, sql.ErrNoRows
	}
	return rv, nil
}

func (s *stubReservationStore) Search(_ context.Context, f repository.Filter) ([]model.Reservation, int, error) {
	var out []model.Reservation
	for _, rv := range s.rows {
		out = append(out, rv)
	}
	return out, len(out), nil
}

func (s *stubReservationStore) UpdateStatus(_ context.Context, id uint64, status, adminNotes, tableNumber string, adminID uint64) error {
	rv, ok := s.rows[id]
	if !ok {
		return sql.ErrNoRows
	}
	rv.Status = status
	rv.AdminNotes = adminNotes
	rv.TableNumber = tableNumber
	rv.LastModifiedBy = &adminID
	s.rows[id] = rv
	return nil
}

func (s *stubReservationStore) Delete(_ context.Context, id uint64) error {
	if _, ok := s.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.rows, id)
	return nil
}

// stubNotifier swallows notifications.
type stubNotifier struct{ calls int }

func (n *stubNotifier) ReservationReceived(context.Context, model.Reservation) error {
	n.calls++
	return nil
}

func (n *stubNotifier) ReservationStatusChanged(context.Context, model.Reservation) error {
	n.calls++
	return nil
}

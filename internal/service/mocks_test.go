package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"github.com/lunabrew/restaurant-backend/internal/googleapi"
	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
)

// Common test errors
var (
	ErrMockStore    = errors.New("mock store error")
	ErrMockNotifier = errors.New("mock notifier error")
	ErrMockSource   = errors.New("mock source error")
)

// MockReservationStore implements ReservationStore for testing. Rows are
// held in insertion order; ids are assigned sequentially.
type MockReservationStore struct {
	mu   sync.Mutex
	Rows []model.Reservation

	CreateErr       error
	FailCreateTimes int // return ErrCodeExists this many times before succeeding
	CreateCalls     int

	UpdateCalls []struct {
		ID          uint64
		Status      string
		AdminID     uint64
		TableNumber string
	}
}

func NewMockReservationStore() *MockReservationStore {
	return &MockReservationStore{}
}

func (m *MockReservationStore) Create(_ context.Context, rv *model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.FailCreateTimes > 0 {
		m.FailCreateTimes--
		return repository.ErrCodeExists
	}
	for _, existing := range m.Rows {
		if existing.ConfirmationCode == rv.ConfirmationCode {
			return repository.ErrCodeExists
		}
	}
	rv.ID = uint64(len(m.Rows) + 1)
	m.Rows = append(m.Rows, *rv)
	return nil
}

func (m *MockReservationStore) GetByID(_ context.Context, id uint64) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rv := range m.Rows {
		if rv.ID == id {
			return rv, nil
		}
	}
	return model.Reservation{}, sql.ErrNoRows
}

func (m *MockReservationStore) Search(_ context.Context, f repository.Filter) ([]model.Reservation, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []model.Reservation
	for _, rv := range m.Rows {
		if f.Status != "" && rv.Status != f.Status {
			continue
		}
		if f.Date != nil && !rv.Date.Equal(*f.Date) {
			continue
		}
		if f.Search != "" && !strings.Contains(rv.CustomerName, f.Search) &&
			!strings.Contains(rv.CustomerEmail, f.Search) &&
			!strings.Contains(rv.ConfirmationCode, f.Search) {
			continue
		}
		matched = append(matched, rv)
	}
	total := len(matched)
	if f.Offset >= total {
		return nil, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (m *MockReservationStore) UpdateStatus(_ context.Context, id uint64, status, adminNotes, tableNumber string, adminID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateCalls = append(m.UpdateCalls, struct {
		ID          uint64
		Status      string
		AdminID     uint64
		TableNumber string
	}{id, status, adminID, tableNumber})

	for i := range m.Rows {
		if m.Rows[i].ID == id {
			m.Rows[i].Status = status
			m.Rows[i].AdminNotes = adminNotes
			m.Rows[i].TableNumber = tableNumber
			m.Rows[i].LastModifiedBy = &adminID
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *MockReservationStore) Delete(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.Rows {
		if m.Rows[i].ID == id {
			m.Rows = append(m.Rows[:i], m.Rows[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// MockNotifier implements Notifier for testing.
type MockNotifier struct {
	mu            sync.Mutex
	ReceivedCalls []model.Reservation
	StatusCalls   []model.Reservation
	Err           error
}

func NewMockNotifier() *MockNotifier { return &MockNotifier{} }

func (m *MockNotifier) ReservationReceived(_ context.Context, rv model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReceivedCalls = append(m.ReceivedCalls, rv)
	return m.Err
}

func (m *MockNotifier) ReservationStatusChanged(_ context.Context, rv model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatusCalls = append(m.StatusCalls, rv)
	return m.Err
}

// MockReviewStore implements ReviewStore for testing, keyed by the
// external review id.
type MockReviewStore struct {
	mu         sync.Mutex
	ByGoogleID map[string]model.Review
	CreateErr  error
}

func NewMockReviewStore() *MockReviewStore {
	return &MockReviewStore{ByGoogleID: map[string]model.Review{}}
}

func (m *MockReviewStore) ExistsByGoogleID(_ context.Context, googleID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ByGoogleID[googleID]
	return ok, nil
}

func (m *MockReviewStore) Create(_ context.Context, rv *model.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if rv.GoogleReviewID != nil {
		if _, ok := m.ByGoogleID[*rv.GoogleReviewID]; ok {
			return repository.ErrDuplicateReview
		}
		rv.ID = uint64(len(m.ByGoogleID) + 1)
		m.ByGoogleID[*rv.GoogleReviewID] = *rv
	}
	return nil
}

// MockReviewSource implements ReviewSource for testing.
type MockReviewSource struct {
	Ready   bool
	Reviews []googleapi.Review
	Err     error
}

func (m *MockReviewSource) Configured() bool { return m.Ready }

func (m *MockReviewSource) ListReviews(_ context.Context) ([]googleapi.Review, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Reviews, nil
}

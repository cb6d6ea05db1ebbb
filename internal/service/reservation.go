package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
	"github.com/lunabrew/restaurant-backend/internal/utils"
)

// codeAttempts bounds confirmation-code regeneration when the store
// reports a collision. Three misses in a row means something is wrong
// beyond bad luck, so the create fails instead of looping.
const codeAttempts = 3

// defaultPageSize is used when the admin listing omits a limit.
const defaultPageSize = 20

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ReservationStore is the persistence surface the lifecycle service
// needs. *repository.ReservationRepo satisfies it; tests use a mock.
type ReservationStore interface {
	Create(ctx context.Context, rv *model.Reservation) error
	GetByID(ctx context.Context, id uint64) (model.Reservation, error)
	Search(ctx context.Context, f repository.Filter) ([]model.Reservation, int, error)
	UpdateStatus(ctx context.Context, id uint64, status, adminNotes, tableNumber string, adminID uint64) error
	Delete(ctx context.Context, id uint64) error
}

// Notifier dispatches customer notifications. Failures never propagate
// past this service: they are logged and the primary operation succeeds
// regardless.
type Notifier interface {
	ReservationReceived(ctx context.Context, rv model.Reservation) error
	ReservationStatusChanged(ctx context.Context, rv model.Reservation) error
}

// ReservationService orchestrates the reservation lifecycle: public
// creation, admin status transitions, queries and deletion.
type ReservationService struct {
	store    ReservationStore
	notifier Notifier
	// now is the clock used for the past-date check; tests pin it.
	now func() time.Time
}

// NewReservationService wires the lifecycle service. notifier may be a
// disabled publisher but must be non-nil.
func NewReservationService(store ReservationStore, notifier Notifier) *ReservationService {
	return &ReservationService{store: store, notifier: notifier, now: time.Now}
}

// CreateInput is the public reservation submission.
type CreateInput struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"`
	Guests        string `json:"guests"`
	Message       string `json:"message"`
}

// Create validates the submission, persists a pending reservation with a
// fresh confirmation code and queues the confirmation notification. A
// code collision triggers regeneration, at most codeAttempts times.
func (s *ReservationService) Create(ctx context.Context, in CreateInput) (model.Reservation, error) {
	fields := map[string]string{}

	name := strings.TrimSpace(in.CustomerName)
	if len([]rune(name)) < 2 {
		fields["customerName"] = "name must be at least 2 characters"
	}
	email := strings.ToLower(strings.TrimSpace(in.CustomerEmail))
	if !emailPattern.MatchString(email) {
		fields["customerEmail"] = "valid email address required"
	}
	phone := strings.TrimSpace(in.CustomerPhone)
	if phone == "" {
		fields["customerPhone"] = "phone number required"
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(in.Date))
	if err != nil {
		fields["date"] = "valid date required (YYYY-MM-DD)"
	} else if date.Before(s.today()) {
		fields["date"] = "reservations cannot be made for past dates"
	}
	if strings.TrimSpace(in.Time) == "" {
		fields["time"] = "time slot required"
	}
	if strings.TrimSpace(in.Guests) == "" {
		fields["guests"] = "party size required"
	}
	if len(fields) > 0 {
		return model.Reservation{}, &ValidationError{Fields: fields}
	}

	rv := model.Reservation{
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Date:          date,
		Time:          strings.TrimSpace(in.Time),
		Guests:        strings.TrimSpace(in.Guests),
		Message:       strings.TrimSpace(in.Message),
		Status:        model.StatusPending,
	}

	for attempt := 0; ; attempt++ {
		code, err := utils.NewConfirmationCode()
		if err != nil {
			return model.Reservation{}, err
		}
		rv.ConfirmationCode = code
		err = s.store.Create(ctx, &rv)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrCodeExists) && attempt+1 < codeAttempts {
			continue
		}
		return model.Reservation{}, err
	}

	if err := s.notifier.ReservationReceived(ctx, rv); err != nil {
		log.Printf("reservation: confirmation notification failed for %d: %v", rv.ID, err)
	}
	return rv, nil
}

// GetSummary returns the reduced public projection of a reservation.
func (s *ReservationService) GetSummary(ctx context.Context, id uint64) (model.ReservationSummary, error) {
	rv, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReservationSummary{}, ErrNotFound
		}
		return model.ReservationSummary{}, err
	}
	return rv.Summary(), nil
}

// Query narrows and paginates the admin reservation listing.
type Query struct {
	Status string
	Date   string // YYYY-MM-DD, empty for any day
	Search string
	Page   int
	Limit  int
}

// Pagination describes one result page.
type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

// Search returns a page of reservations plus pagination facts. Page and
// limit are normalized; pages is ceil(total/limit).
func (s *ReservationService) Search(ctx context.Context, q Query) ([]model.Reservation, Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}
	f := repository.Filter{
		Status: q.Status,
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	}
	if q.Date != "" {
		d, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return nil, Pagination{}, invalid("date", "valid date required (YYYY-MM-DD)")
		}
		f.Date = &d
	}
	items, total, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, Pagination{
		Current: q.Page,
		Pages:   (total + q.Limit - 1) / q.Limit,
		Total:   total,
	}, nil
}

// UpdateStatus performs an admin status transition and queues the
// status-update notification. Any of the four states may be set directly;
// the edges are intentionally not enforced to preserve administrative
// flexibility. adminID is recorded as the last modifier.
func (s *ReservationService) UpdateStatus(ctx context.Context, id uint64, status, adminNotes, tableNumber string, adminID uint64) (model.Reservation, error) {
	status = strings.TrimSpace(status)
	if !model.ValidStatus(status) {
		return model.Reservation{}, invalid("status", "status must be one of pending, confirmed, cancelled, completed")
	}
	rv, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, ErrNotFound
		}
		return model.Reservation{}, err
	}
	if err := s.store.UpdateStatus(ctx, id, status, adminNotes, tableNumber, adminID); err != nil {
		return model.Reservation{}, err
	}
	rv.Status = status
	rv.AdminNotes = adminNotes
	rv.TableNumber = tableNumber
	rv.LastModifiedBy = &adminID

	if err := s.notifier.ReservationStatusChanged(ctx, rv); err != nil {
		log.Printf("reservation: status notification failed for %d: %v", rv.ID, err)
	}
	return rv, nil
}

// Delete removes a reservation unconditionally.
func (s *ReservationService) Delete(ctx context.Context, id uint64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// today truncates the clock to the local calendar day, the granularity
// of the past-date check.
func (s *ReservationService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lunabrew/restaurant-backend/internal/model"
)

// ReservationRepo provides CRUD operations over the reservations table.
// The unique index on confirmation_code turns a race between two
// near-simultaneous creations with colliding codes into ErrCodeExists,
// which the service layer resolves by regenerating the code. All date
// values are stored at day granularity in the DATE column.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationCols = "id,confirmation_code,customer_name,customer_email,customer_phone," +
	"date,time,guests,message,status,admin_notes,table_number,last_modified_by,created_at,updated_at"

func scanReservation(row interface{ Scan(...any) error }) (model.Reservation, error) {
	var (
		rv       model.Reservation
		message  sql.NullString
		notes    sql.NullString
		table    sql.NullString
		modified sql.NullInt64
	)
	err := row.Scan(&rv.ID, &rv.ConfirmationCode, &rv.CustomerName, &rv.CustomerEmail,
		&rv.CustomerPhone, &rv.Date, &rv.Time, &rv.Guests, &message, &rv.Status,
		&notes, &table, &modified, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return model.Reservation{}, err
	}
	rv.Message = message.String
	rv.AdminNotes = notes.String
	rv.TableNumber = table.String
	if modified.Valid {
		id := uint64(modified.Int64)
		rv.LastModifiedBy = &id
	}
	return rv, nil
}

// Create inserts a new reservation and populates the generated ID and
// timestamps on the passed record. ErrCodeExists signals a confirmation
// code collision.
func (r *ReservationRepo) Create(ctx context.Context, rv *model.Reservation) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reservations
		   (confirmation_code, customer_name, customer_email, customer_phone,
		    date, time, guests, message, status)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		rv.ConfirmationCode, rv.CustomerName, rv.CustomerEmail, rv.CustomerPhone,
		rv.Date.Format("2006-01-02"), rv.Time, rv.Guests, rv.Message, rv.Status)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrCodeExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	now := time.Now().UTC()
	rv.CreatedAt = now
	rv.UpdatedAt = now
	return nil
}

// GetByID fetches a reservation by id. Returns sql.ErrNoRows when absent.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reservationCols+" FROM reservations WHERE id=? LIMIT 1", id)
	return scanReservation(row)
}

// Filter narrows the admin reservation listing. Status "" or "all" means
// unfiltered; Date matches any reservation on that calendar day; Search
// is matched case-insensitively against name, email and phone.
type Filter struct {
	Status string
	Date   *time.Time
	Search string
	Limit  int
	Offset int
}

// Search returns a page of reservations matching f plus the total match
// count. Results are ordered by date descending, then time descending.
func (r *ReservationRepo) Search(ctx context.Context, f Filter) ([]model.Reservation, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if f.Status != "" && f.Status != "all" {
		where += " AND status=?"
		args = append(args, f.Status)
	}
	if f.Date != nil {
		where += " AND date=?"
		args = append(args, f.Date.Format("2006-01-02"))
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		where += " AND (LOWER(customer_name) LIKE LOWER(?) OR LOWER(customer_email) LIKE LOWER(?) OR customer_phone LIKE ?)"
		args = append(args, like, like, like)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + reservationCols + " FROM reservations" + where +
		" ORDER BY date DESC, time DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0, f.Limit)
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	return out, total, rows.Err()
}

// UpdateStatus persists a status transition together with the optional
// admin note and table assignment. Booking facts are never touched here.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status, adminNotes, tableNumber string, adminID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE reservations SET status=?, admin_notes=?, table_number=?, last_modified_by=? WHERE id=?",
		status, adminNotes, tableNumber, adminID, id)
	return err
}

// Delete removes a reservation unconditionally. Returns sql.ErrNoRows
// when no row matched.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Stats holds the reservation counters shown on the admin dashboard.
type Stats struct {
	Today    int `json:"today"`
	Pending  int `json:"pending"`
	Upcoming int `json:"upcoming"` // confirmed, today or later
	ThisWeek int `json:"thisWeek"` // last seven days
	Total    int `json:"total"`
}

// CountStats computes the dashboard counters relative to today's local
// calendar day.
func (r *ReservationRepo) CountStats(ctx context.Context, today time.Time) (Stats, error) {
	day := today.Format("2006-01-02")
	weekAgo := today.AddDate(0, 0, -7).Format("2006-01-02")
	var s Stats
	steps := []struct {
		dst   *int
		query string
		args  []any
	}{
		{&s.Today, "SELECT COUNT(*) FROM reservations WHERE date=?", []any{day}},
		{&s.Pending, "SELECT COUNT(*) FROM reservations WHERE status=?", []any{model.StatusPending}},
		{&s.Upcoming, "SELECT COUNT(*) FROM reservations WHERE status=? AND date>=?", []any{model.StatusConfirmed, day}},
		{&s.ThisWeek, "SELECT COUNT(*) FROM reservations WHERE date>=?", []any{weekAgo}},
		{&s.Total, "SELECT COUNT(*) FROM reservations", nil},
	}
	for _, st := range steps {
		if err := r.db.QueryRowContext(ctx, st.query, st.args...).Scan(st.dst); err != nil {
			return Stats{}, err
		}
	}
	return s, nil
}

// Recent returns the newest reservations as reduced projections for the
// dashboard.
func (r *ReservationRepo) Recent(ctx context.Context, limit int) ([]model.ReservationSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,customer_name,date,time,guests,status FROM reservations ORDER BY created_at DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ReservationSummary, 0, limit)
	for rows.Next() {
		var s model.ReservationSummary
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.Date, &s.Time, &s.Guests, &s.Status); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

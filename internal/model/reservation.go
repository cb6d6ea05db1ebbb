package model

import "time"

// Reservation status values. The four states form the reservation
// lifecycle: pending is assigned on public submission, admins move a
// booking to confirmed/cancelled/completed afterwards.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the four reservation states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Reservation records one table-booking request submitted through the
// public site. The confirmation code is the human-shareable identity and
// is unique and immutable once assigned; the numeric ID is the storage
// key. Booking facts (customer contact, date, time, guests, message) are
// immutable after creation; admins only ever touch the status, notes and
// table assignment.
//
// Fields:
//  ID               – primary key identifier.
//  ConfirmationCode – unique code handed back to the customer.
//  CustomerName     – customer full name.
//  CustomerEmail    – customer email address (lowercased).
//  CustomerPhone    – customer phone number.
//  Date             – requested calendar day.
//  Time             – requested slot label, e.g. "19:00".
//  Guests           – party size label, e.g. "2" or "8+".
//  Message          – optional free-text request from the customer.
//  Status           – lifecycle state (pending/confirmed/cancelled/completed).
//  AdminNotes       – free-text staff note.
//  TableNumber      – assigned table label.
//  LastModifiedBy   – account that last changed the status (nullable).
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Reservation struct {
	ID               uint64    `json:"id"`                // reservations.id
	ConfirmationCode string    `json:"confirmationCode"`  // reservations.confirmation_code
	CustomerName     string    `json:"customerName"`      // reservations.customer_name
	CustomerEmail    string    `json:"customerEmail"`     // reservations.customer_email
	CustomerPhone    string    `json:"customerPhone"`     // reservations.customer_phone
	Date             time.Time `json:"date"`              // reservations.date (DATE)
	Time             string    `json:"time"`              // reservations.time
	Guests           string    `json:"guests"`            // reservations.guests
	Message          string    `json:"message,omitempty"` // reservations.message
	Status           string    `json:"status"`            // reservations.status
	AdminNotes       string    `json:"adminNotes"`        // reservations.admin_notes
	TableNumber      string    `json:"tableNumber"`       // reservations.table_number
	LastModifiedBy   *uint64   `json:"lastModifiedBy,omitempty"` // reservations.last_modified_by (nullable)
	CreatedAt        time.Time `json:"createdAt"`         // reservations.created_at
	UpdatedAt        time.Time `json:"updatedAt"`         // reservations.updated_at
}

// ReservationSummary is the reduced projection returned by the public
// status endpoint. It deliberately omits contact details so that knowing
// a reservation id does not leak the customer's email or phone.
type ReservationSummary struct {
	ID           uint64    `json:"id"`
	CustomerName string    `json:"customerName"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Guests       string    `json:"guests"`
	Status       string    `json:"status"`
}

// Summary returns the reduced projection of r.
func (r Reservation) Summary() ReservationSummary {
	return ReservationSummary{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Date:         r.Date,
		Time:         r.Time,
		Guests:       r.Guests,
		Status:       r.Status,
	}
}

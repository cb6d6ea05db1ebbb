// Package queue moves reservation notifications through RabbitMQ.
// Publishing happens on the request path but never gates it: the
// lifecycle service logs a failed publish and carries on. A background
// consumer drains the queue and delivers the actual emails.
package queue

// Notification intents.
const (
	IntentConfirmation = "confirmation"  // reservation was just created
	IntentStatusUpdate = "status-update" // an admin changed the status
)

// notificationQueue is the durable queue both sides declare.
const notificationQueue = "reservation.notifications"

// ReservationNotificationEvent carries everything the consumer needs to
// render and address a customer email without querying the database.
type ReservationNotificationEvent struct {
	Intent           string `json:"intent"`
	ReservationID    uint64 `json:"reservation_id"`
	ConfirmationCode string `json:"confirmation_code"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	Date             string `json:"date"` // YYYY-MM-DD
	Time             string `json:"time"`
	Guests           string `json:"guests"`
	Message          string `json:"message,omitempty"`
	Status           string `json:"status"`
	TableNumber      string `json:"table_number,omitempty"`
	AdminNotes       string `json:"admin_notes,omitempty"`
	OccurredAt       string `json:"occurred_at"`
}

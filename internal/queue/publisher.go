package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lunabrew/restaurant-backend/internal/model"
)

// Publisher pushes notification events onto the durable queue. It dials
// per publish so a broker restart between requests never leaves it
// holding a dead connection. Errors are logged and returned so the
// caller can ignore them without interrupting the main request flow.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher for the given AMQP URL. An empty URL
// yields a disabled publisher whose sends report an error to be logged.
func NewPublisher(url string) *Publisher { return &Publisher{url: url} }

// ReservationReceived queues the confirmation notification for a freshly
// created reservation.
func (p *Publisher) ReservationReceived(ctx context.Context, rv model.Reservation) error {
	return p.publish(ctx, eventFrom(IntentConfirmation, rv))
}

// ReservationStatusChanged queues the status-update notification after an
// admin transition.
func (p *Publisher) ReservationStatusChanged(ctx context.Context, rv model.Reservation) error {
	return p.publish(ctx, eventFrom(IntentStatusUpdate, rv))
}

func eventFrom(intent string, rv model.Reservation) ReservationNotificationEvent {
	return ReservationNotificationEvent{
		Intent:           intent,
		ReservationID:    rv.ID,
		ConfirmationCode: rv.ConfirmationCode,
		CustomerName:     rv.CustomerName,
		CustomerEmail:    rv.CustomerEmail,
		Date:             rv.Date.Format("2006-01-02"),
		Time:             rv.Time,
		Guests:           rv.Guests,
		Message:          rv.Message,
		Status:           rv.Status,
		TableNumber:      rv.TableNumber,
		AdminNotes:       rv.AdminNotes,
		OccurredAt:       time.Now().UTC().Format(time.RFC3339),
	}
}

func (p *Publisher) publish(ctx context.Context, event ReservationNotificationEvent) error {
	if p.url == "" {
		return errNotConfigured
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(notificationQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", notificationQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lunabrew/restaurant-backend/internal/notify"
)

var errNotConfigured = errors.New("rabbitmq url not configured")

// Consumer drains reservation.notifications and delivers the rendered
// emails through a Mailer. Delivery is fire-once: a message that fails to
// process is rejected without requeue so a poisoned payload cannot wedge
// the queue.
type Consumer struct {
	url      string
	mailer   notify.Mailer
	opsEmail string // copied on confirmation notifications; empty disables the copy
}

// NewConsumer builds a Consumer. mailer must be non-nil; use
// notify.NewSMTPMailer or a log-only mailer in development.
func NewConsumer(url string, mailer notify.Mailer, opsEmail string) *Consumer {
	return &Consumer{url: url, mailer: mailer, opsEmail: opsEmail}
}

// Start connects to RabbitMQ, declares the durable queue and consumes
// until ctx is cancelled. It runs a reconnect loop with capped backoff
// and logs processing errors instead of returning them, so the server
// keeps operating through broker outages.
func (cs *Consumer) Start(ctx context.Context) error {
	if cs.url == "" {
		return errNotConfigured
	}
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(cs.url)
		if err != nil {
			log.Printf("notification-consumer: dial failed: %v; retrying in %s", err, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := cs.consumeLoop(ctx, conn); err != nil {
			log.Printf("notification-consumer: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (cs *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		log.Printf("notification-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(notificationQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(notificationQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := cs.handleMessage(ctx, d.Body); err != nil {
				log.Printf("notification-consumer: handle message failed: %v", err)
				_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (cs *Consumer) handleMessage(ctx context.Context, body []byte) error {
	var ev ReservationNotificationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	mail := notify.ReservationMail{
		CustomerName:     ev.CustomerName,
		ConfirmationCode: ev.ConfirmationCode,
		Date:             ev.Date,
		Time:             ev.Time,
		Guests:           ev.Guests,
		Message:          ev.Message,
		Status:           ev.Status,
		TableNumber:      ev.TableNumber,
		AdminNotes:       ev.AdminNotes,
	}

	var subject, html string
	recipients := []string{ev.CustomerEmail}
	switch ev.Intent {
	case IntentConfirmation:
		subject, html = notify.ConfirmationEmail(mail)
		if cs.opsEmail != "" {
			recipients = append(recipients, cs.opsEmail)
		}
	case IntentStatusUpdate:
		subject, html = notify.StatusUpdateEmail(mail)
	default:
		return fmt.Errorf("unknown intent %q", ev.Intent)
	}

	if err := cs.mailer.Send(ctx, recipients, subject, html); err != nil {
		return fmt.Errorf("send mail for reservation %d: %w", ev.ReservationID, err)
	}
	log.Printf("notification-consumer: delivered %s mail for reservation %d", ev.Intent, ev.ReservationID)
	return nil
}

package commands

import (
	"context"
	"encoding/json"
	"time"

	"barista-cafe-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox topics, also used as AMQP routing keys.
const (
	TopicBookingCreated       = "booking.created"
	TopicBookingStatusChanged = "booking.status_changed"

	jobKindBookingEvent = "booking_event"
)

type BookingCreatedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Date       string    `json:"booking_date"`
	Time       string    `json:"booking_time"`
	PartySize  int       `json:"number_of_people"`
	OccurredAt time.Time `json:"occurred_at"`
}

type BookingStatusChangedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, event any, now time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), jobKindBookingEvent, topic, payload, now)
}

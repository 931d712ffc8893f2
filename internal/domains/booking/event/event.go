package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"carehub/config"
	"carehub/infras/kafka"
	"carehub/internal/domains/booking/model"
	"context"
	"fmt"
	"time"
)

const (
	TypeStatusChanged = "booking.status_changed"

	headerEventType = "event-type"
)

// StatusChanged is the payload published after every successful lifecycle transition.
type StatusChanged struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"bookingId"`
	ParentID    string    `json:"parentId"`
	NannyID     string    `json:"nannyId"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Operation   string    `json:"operation"`
	ActorID     string    `json:"actorId"`
	CancelledBy *string   `json:"cancelledBy,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func NewStatusChanged(op model.Operation, from model.Status, booking model.Booking, actorID string) StatusChanged {
	evt := StatusChanged{
		Type:       TypeStatusChanged,
		BookingID:  booking.ID,
		ParentID:   booking.ParentID,
		NannyID:    booking.NannyID,
		From:       string(from),
		To:         string(booking.Status),
		Operation:  string(op),
		ActorID:    actorID,
		OccurredAt: booking.ModifiedAt,
	}

	if booking.CancelledBy != nil {
		by := string(*booking.CancelledBy)
		evt.CancelledBy = &by
	}

	return evt
}

type Publisher interface {
	StatusChanged(ctx context.Context, evt StatusChanged) error
}

type publisherImpl struct {
	producer kafka.Producer
	topic    string
}

func New(cfg *config.Config, producer kafka.Producer) Publisher {
	return &publisherImpl{
		producer: producer,
		topic:    cfg.Kafka.Topics.BookingEvents,
	}
}

// StatusChanged keys messages by booking id so one booking's events stay ordered.
func (p *publisherImpl) StatusChanged(ctx context.Context, evt StatusChanged) error {
	err := p.producer.Publish(ctx, p.topic, kafka.Message{
		Key:     evt.BookingID,
		Value:   evt,
		Headers: map[string]string{headerEventType: evt.Type},
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

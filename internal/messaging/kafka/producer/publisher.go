package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderPlacedEvent is emitted after the backend confirms an order was created
// without a payment redirect. Consumers (analytics, back-office dashboards)
// are downstream of this repo.
type OrderPlacedEvent struct {
	OrderID    int64     `json:"order_id"`
	Session    string    `json:"session"`
	TotalItems int64     `json:"total_items"`
	TotalPrice string    `json:"total_price"`
	PlacedAt   time.Time `json:"placed_at"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.placed")},
			{Key: "aggregate_type", Value: []byte("order")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

type nopPublisher struct{}

// NewNopPublisher is used when kafka is not configured; checkout never
// depends on the broker being up.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishOrderPlaced(context.Context, OrderPlacedEvent) error {
	return nil
}

// Package kafka publishes order change notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	eventTypeHeader  = "event-type"
	orderChangedType = "order.changed"
)

// MessageWriter is the subset of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderChangedPublisher writes the order snapshot as JSON, keyed by order id
// so every change of one order lands on the same partition.
type OrderChangedPublisher struct {
	writer MessageWriter
	clock  kernel.Clock
}

var _ ports.OrderEventPublisher = (*OrderChangedPublisher)(nil)

func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	return NewOrderChangedPublisherWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}, kernel.SystemClock())
}

func NewOrderChangedPublisherWithWriter(writer MessageWriter, clock kernel.Clock) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: writer,
		clock:  clock,
	}
}

func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, snapshot order.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(snapshot.OrderID),
		Value: data,
		Time:  p.clock.Now(),
		Headers: []kafkago.Header{
			{Key: eventTypeHeader, Value: []byte(orderChangedType)},
		},
	})
}

func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

// NoopOrderChangedPublisher drops every event. Used when no brokers are configured.
type NoopOrderChangedPublisher struct{}

var _ ports.OrderEventPublisher = NoopOrderChangedPublisher{}

func (NoopOrderChangedPublisher) PublishOrderChanged(context.Context, order.Snapshot) error {
	return nil
}

// ParseBrokers splits a comma separated broker list, skipping blanks.
func ParseBrokers(csv string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

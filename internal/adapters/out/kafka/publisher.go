// Package kafka publishes order stage changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"printorders/internal/core/ports"
	"printorders/internal/pkg/telemetry"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel/attribute"
)

const traceParentHeader = "traceparent"

// Publisher implements ports.EventPublisher on a franz-go client.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewPublisher connects to the given brokers. The client connects lazily, so
// an unreachable broker surfaces on the first publish.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("printorders"),
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		client: client,
		topic:  topic,
		logger: logger.With("component", "kafka-publisher"),
	}, nil
}

// PublishStageChanged produces the event keyed by order id and waits for the
// broker acknowledgement.
func (p *Publisher) PublishStageChanged(ctx context.Context, event ports.OrderStageChanged) (err error) {
	ctx, span := telemetry.Start(ctx, "kafka", "PublishStageChanged",
		attribute.String("kafka.topic", p.topic),
		attribute.String("order.id", event.ID),
	)
	defer func() { telemetry.End(span, err) }()

	record, err := newRecord(ctx, p.topic, event)
	if err != nil {
		return err
	}

	if err = p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "stage change published", "id", event.ID, "to", event.To)
	return nil
}

// Close closes the client.
func (p *Publisher) Close() {
	p.client.Close()
}

func newRecord(ctx context.Context, topic string, event ports.OrderStageChanged) (*kgo.Record, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(event.ID),
		Value: value,
	}
	if tp := telemetry.TraceParent(ctx); tp != "" {
		record.Headers = append(record.Headers, kgo.RecordHeader{Key: traceParentHeader, Value: []byte(tp)})
	}
	return record, nil
}

// NopPublisher drops every event. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStageChanged(context.Context, ports.OrderStageChanged) error {
	return nil
}

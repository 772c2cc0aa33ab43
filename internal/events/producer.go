package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("checkout/events")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes domain events to kafka. Each message carries the trace
// context of the caller in its headers.
type Producer struct {
	logger *slog.Logger
	writer messageWriter

	orderConfirmedTopic string
	paymentEventsTopic  string
}

func NewProducer(logger *slog.Logger, cfg config.Kafka) *Producer {
	return newProducer(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           cfg.BatchTimeout,
	}, cfg)
}

func newProducer(logger *slog.Logger, writer messageWriter, cfg config.Kafka) *Producer {
	return &Producer{
		logger:              logger.With(slog.String("component", "events")),
		writer:              writer,
		orderConfirmedTopic: cfg.OrderConfirmedTopic,
		paymentEventsTopic:  cfg.PaymentEventsTopic,
	}
}

// PublishOrderConfirmed is keyed by order id so that events of one order stay ordered.
func (p *Producer) PublishOrderConfirmed(ctx context.Context, event entities.OrderConfirmedEvent) error {
	return p.publish(ctx, p.orderConfirmedTopic, event.OrderID, event)
}

func (p *Producer) PublishPaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	return p.publish(ctx, p.paymentEventsTopic, event.IntentID, event)
}

func (p *Producer) publish(ctx context.Context, topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}

	ctx, span := tracer.Start(ctx, "send "+topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(topic),
			semconv.MessagingKafkaMessageKey(key),
		),
	)
	defer span.End()

	InjectTrace(ctx, &msg)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}

	p.logger.Debug("event published", slog.String("topic", topic), slog.String("key", key))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

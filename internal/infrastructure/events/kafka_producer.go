// Package events publishes work order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/config"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// workOrderEvent is the wire format of one lifecycle event.
type workOrderEvent struct {
	EventType   string    `json:"event_type"`
	WorkOrderID string    `json:"work_order_id"`
	PropertyID  string    `json:"property_id,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// messageWriter is the slice of kafka.Writer the producer uses. Tests swap in
// a fake.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer publishes work order events. Messages are keyed by work
// order ID so one order's events stay in order within a partition.
type KafkaProducer struct {
	writer messageWriter
	log    logger.Logger
}

// NewKafkaProducer creates the producer.
func NewKafkaProducer(cfg *config.KafkaConfig, log logger.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		WriteTimeout: 5 * time.Second,
	}
	return &KafkaProducer{writer: writer, log: log.WithComponent("kafka_producer")}
}

var _ domainservice.WorkOrderEventPublisher = (*KafkaProducer)(nil)

// PublishCreated emits a work_order.created event.
func (p *KafkaProducer) PublishCreated(ctx context.Context, order *models.WorkOrder) error {
	return p.publish(ctx, "work_order.created", order)
}

// PublishStatusChanged emits a work_order.status_changed event.
func (p *KafkaProducer) PublishStatusChanged(ctx context.Context, order *models.WorkOrder) error {
	return p.publish(ctx, "work_order.status_changed", order)
}

func (p *KafkaProducer) publish(ctx context.Context, eventType string, order *models.WorkOrder) error {
	event := workOrderEvent{
		EventType:   eventType,
		WorkOrderID: order.ID,
		Priority:    string(order.Priority),
		Status:      string(order.Status),
		Category:    order.Category,
		OccurredAt:  time.Now().UTC(),
	}
	if order.PropertyID != nil {
		event.PropertyID = *order.PropertyID
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.ErrEventBus.WithMessage("failed to marshal event").WithError(err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	})
	if err != nil {
		return errors.ErrEventBus.WithMessage("failed to write event").WithError(err)
	}

	p.log.Debug(ctx, "event published",
		logger.String("event_type", eventType),
		logger.String("work_order_id", order.ID))
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

package event

import (
	"context"
	"log/slog"

	pkgkafka "github.com/nmbt2910/iheartev-sub001/pkg/kafka"
)

// Topics consumed from the review and order services.
var (
	TopicReviewCreated      = pkgkafka.Topic("review", "created")
	TopicOrderStatusChanged = pkgkafka.Topic("order", "status_changed")
)

// Event types carried inside the envelopes on those topics.
const (
	EventTypeReviewCreated      = "review.created"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// ConsumerGroupID for the profile service.
const ConsumerGroupID = "profile-service"

// Handle routes an incoming Kafka event to the matching handler. Unknown
// event types are logged and committed so they do not block the partition.
func (h *Handlers) Handle(ctx context.Context, event *pkgkafka.Event) error {
	switch event.EventType {
	case EventTypeReviewCreated:
		return h.HandleReviewCreated(ctx, event)
	case EventTypeOrderStatusChanged:
		return h.HandleOrderStatusChanged(ctx, event)
	default:
		h.logger.WarnContext(ctx, "unknown event type received",
			slog.String("event_type", event.EventType),
			slog.String("event_id", event.EventID),
		)
		return nil
	}
}

// NewConsumers creates Kafka consumers for all topics the profile service
// subscribes to.
func NewConsumers(brokers []string, handlers *Handlers, logger *slog.Logger) []*pkgkafka.Consumer {
	topics := []string{
		TopicReviewCreated,
		TopicOrderStatusChanged,
	}

	consumers := make([]*pkgkafka.Consumer, 0, len(topics))
	for _, topic := range topics {
		cfg := pkgkafka.ConsumerConfig{
			Brokers:  brokers,
			GroupID:  ConsumerGroupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}
		consumers = append(consumers, pkgkafka.NewConsumer(cfg, handlers.Handle, logger))
	}
	return consumers
}

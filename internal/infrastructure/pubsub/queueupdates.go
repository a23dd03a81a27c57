package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lineup/internal/shared/logger"
)

// QueueUpdateEvent is the wire shape fanned out to display boards and
// customer devices watching one queue. It is a flattened snapshot of a
// domain event; consumers never see aggregate internals.
type QueueUpdateEvent struct {
	QueueSID    string          `json:"queue_sid"`
	EventType   string          `json:"event_type"`
	TicketSID   string          `json:"ticket_sid,omitempty"`
	Number      int             `json:"number,omitempty"`
	Label       string          `json:"label,omitempty"`
	CounterName string          `json:"counter_name,omitempty"`
	Status      string          `json:"status,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Timestamp   int64           `json:"timestamp"`
}

// QueueUpdateHandler is a callback function for handling queue update events
type QueueUpdateHandler func(ctx context.Context, event QueueUpdateEvent)

// QueueUpdatePublisher defines the interface for publishing queue updates
type QueueUpdatePublisher interface {
	PublishUpdate(ctx context.Context, event QueueUpdateEvent) error
}

// QueueUpdateSubscriber defines the interface for subscribing to one queue's updates
type QueueUpdateSubscriber interface {
	SubscribeQueue(ctx context.Context, queueSID string, handler QueueUpdateHandler) error
}

// RedisQueueUpdateBus implements both QueueUpdatePublisher and
// QueueUpdateSubscriber using Redis Pub/Sub. Each queue gets its own
// channel so a display board only receives traffic for the queue it
// shows.
type RedisQueueUpdateBus struct {
	client        *redis.Client
	channelPrefix string
	logger        logger.Interface
}

// NewRedisQueueUpdateBus creates a new Redis-based queue update bus
func NewRedisQueueUpdateBus(client *redis.Client, channelPrefix string, logger logger.Interface) *RedisQueueUpdateBus {
	if channelPrefix == "" {
		channelPrefix = "lineup"
	}
	return &RedisQueueUpdateBus{
		client:        client,
		channelPrefix: channelPrefix,
		logger:        logger,
	}
}

func (b *RedisQueueUpdateBus) channelFor(queueSID string) string {
	return fmt.Sprintf("%s:queue:%s:updates", b.channelPrefix, queueSID)
}

// PublishUpdate publishes one update to the queue's channel
func (b *RedisQueueUpdateBus) PublishUpdate(ctx context.Context, event QueueUpdateEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	channel := b.channelFor(event.QueueSID)
	if err := b.client.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish queue update",
			"queue_sid", event.QueueSID,
			"event_type", event.EventType,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("queue update published",
		"channel", channel,
		"event_type", event.EventType,
	)
	return nil
}

// SubscribeQueue subscribes to one queue's updates and calls the handler for each event.
// It blocks until the context is cancelled.
func (b *RedisQueueUpdateBus) SubscribeQueue(ctx context.Context, queueSID string, handler QueueUpdateHandler) error {
	channel := b.channelFor(queueSID)
	pubsub := b.client.Subscribe(ctx, channel)
	defer pubsub.Close()

	// Wait for subscription confirmation
	_, err := pubsub.Receive(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Debugw("subscribed to queue updates", "channel", channel)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("queue update channel closed", "channel", channel)
				return nil
			}

			var event QueueUpdateEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal queue update",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			// Deliver inline; SSE streams rely on per-message ordering.
			handler(ctx, event)
		}
	}
}

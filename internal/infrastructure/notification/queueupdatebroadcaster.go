package notification

import (
	"context"
	"encoding/json"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	"lineup/internal/infrastructure/pubsub"
	"lineup/internal/shared/logger"
)

// QueueUpdateBroadcaster forwards domain events to the per-queue Redis
// channels that display boards and customer devices watch. Delivery is
// best effort: a dropped update never fails the operation that raised
// the event.
type QueueUpdateBroadcaster struct {
	bus    pubsub.QueueUpdatePublisher
	logger logger.Interface
}

func NewQueueUpdateBroadcaster(bus pubsub.QueueUpdatePublisher, logger logger.Interface) *QueueUpdateBroadcaster {
	return &QueueUpdateBroadcaster{
		bus:    bus,
		logger: logger,
	}
}

// Register subscribes the broadcaster to every event type it forwards.
func (b *QueueUpdateBroadcaster) Register(subscriber events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTypeTicketCreated,
		ticket.EventTypeTicketCalled,
		ticket.EventTypeTicketStateChanged,
		ticket.EventTypeTicketCompleted,
		queue.EventTypeQueueCreated,
		queue.EventTypeQueuePaused,
		queue.EventTypeQueueResumed,
		queue.EventTypeQueueClosed,
	} {
		if err := subscriber.Subscribe(eventType, b); err != nil {
			return err
		}
	}
	return nil
}

func (b *QueueUpdateBroadcaster) CanHandle(eventType string) bool {
	switch eventType {
	case ticket.EventTypeTicketCreated,
		ticket.EventTypeTicketCalled,
		ticket.EventTypeTicketStateChanged,
		ticket.EventTypeTicketCompleted,
		queue.EventTypeQueueCreated,
		queue.EventTypeQueuePaused,
		queue.EventTypeQueueResumed,
		queue.EventTypeQueueClosed:
		return true
	default:
		return false
	}
}

// Handle maps one domain event onto the wire shape and publishes it.
func (b *QueueUpdateBroadcaster) Handle(event events.DomainEvent) error {
	update := pubsub.QueueUpdateEvent{
		EventType: event.GetEventType(),
		Timestamp: event.GetOccurredAt().Unix(),
	}

	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		update.QueueSID = e.QueueSID
		update.TicketSID = e.TicketSID
		update.Number = e.Number
		update.Label = e.Label
	case ticket.TicketCalledEvent:
		update.QueueSID = e.QueueSID
		update.TicketSID = e.TicketSID
		update.Number = e.Number
		update.Label = e.Label
		update.CounterName = e.CounterName
	case ticket.TicketStateChangedEvent:
		update.QueueSID = e.QueueSID
		update.TicketSID = e.TicketSID
		update.Number = e.Number
		update.Status = e.NewStatus
	case ticket.TicketCompletedEvent:
		update.QueueSID = e.QueueSID
		update.TicketSID = e.TicketSID
		update.Number = e.Number
	case queue.QueueCreatedEvent:
		update.QueueSID = e.QueueSID
	case queue.QueuePausedEvent:
		update.QueueSID = e.QueueSID
	case queue.QueueResumedEvent:
		update.QueueSID = e.QueueSID
	case queue.QueueClosedEvent:
		update.QueueSID = e.QueueSID
	default:
		b.logger.Debugw("ignoring event without queue mapping", "event_type", event.GetEventType())
		return nil
	}

	// The full event rides along for consumers that want more than the
	// flattened fields, the called event's up-next list in particular.
	if payload, err := json.Marshal(event); err == nil {
		update.Payload = payload
	}

	if err := b.bus.PublishUpdate(context.Background(), update); err != nil {
		b.logger.Warnw("failed to broadcast queue update",
			"queue_sid", update.QueueSID,
			"event_type", update.EventType,
			"error", err,
		)
	}
	return nil
}

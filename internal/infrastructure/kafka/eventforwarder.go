package kafka

import (
	"encoding/json"
	"strings"

	"github.com/IBM/sarama"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	"lineup/internal/shared/logger"
)

// EventForwarder exports domain events to Kafka for downstream
// consumers (analytics, signage, archival). Ticket and queue events
// go to separate topics. Messages are keyed by queue SID so every
// event for one queue lands on one partition in order.
//
// Export is best effort. A broker outage is logged and the event
// dropped; the in-process handlers already ran.
type EventForwarder struct {
	producer    sarama.SyncProducer
	ticketTopic string
	queueTopic  string
	logger      logger.Interface
}

func NewEventForwarder(producer sarama.SyncProducer, ticketTopic, queueTopic string, log logger.Interface) *EventForwarder {
	return &EventForwarder{
		producer:    producer,
		ticketTopic: ticketTopic,
		queueTopic:  queueTopic,
		logger:      log,
	}
}

// Register subscribes the forwarder to every domain event.
func (f *EventForwarder) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(events.EventTypeAll, f)
}

func (f *EventForwarder) CanHandle(eventType string) bool {
	return strings.HasPrefix(eventType, "ticket.") || strings.HasPrefix(eventType, "queue.")
}

func (f *EventForwarder) Handle(event events.DomainEvent) error {
	topic := f.topicFor(event.GetEventType())
	if topic == "" {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		f.logger.Warnw("failed to marshal event for kafka export",
			"event_type", event.GetEventType(),
			"error", err,
		)
		return nil
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(partitionKey(event)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.GetEventType())},
		},
	}

	partition, offset, err := f.producer.SendMessage(message)
	if err != nil {
		f.logger.Warnw("failed to export event to kafka",
			"event_type", event.GetEventType(),
			"topic", topic,
			"error", err,
		)
		return nil
	}

	f.logger.Debugw("exported event to kafka",
		"event_type", event.GetEventType(),
		"topic", topic,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

func (f *EventForwarder) topicFor(eventType string) string {
	switch {
	case strings.HasPrefix(eventType, "ticket."):
		return f.ticketTopic
	case strings.HasPrefix(eventType, "queue."):
		return f.queueTopic
	default:
		return ""
	}
}

// partitionKey returns the queue SID the event belongs to. Aggregate
// IDs are prefixed ("ticket:{sid}") and ticket events would scatter a
// queue's history across partitions, so the key comes from the event
// payload instead.
func partitionKey(event events.DomainEvent) string {
	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		return e.QueueSID
	case ticket.TicketCalledEvent:
		return e.QueueSID
	case ticket.TicketStateChangedEvent:
		return e.QueueSID
	case ticket.TicketCompletedEvent:
		return e.QueueSID
	case queue.QueueCreatedEvent:
		return e.QueueSID
	case queue.QueuePausedEvent:
		return e.QueueSID
	case queue.QueueResumedEvent:
		return e.QueueSID
	case queue.QueueClosedEvent:
		return e.QueueSID
	default:
		return event.GetAggregateID()
	}
}

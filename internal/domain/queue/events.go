package queue

import (
	"fmt"
	"time"

	"lineup/internal/domain/shared/events"
)

// Event types
const (
	EventTypeQueueCreated = "queue.created"
	EventTypeQueuePaused  = "queue.paused"
	EventTypeQueueResumed = "queue.resumed"
	EventTypeQueueClosed  = "queue.closed"
)

// QueueCreatedEvent is emitted when a queue is opened for a service day
type QueueCreatedEvent struct {
	events.BaseEvent
	QueueSID     string    `json:"queue_sid"`
	ServiceSID   string    `json:"service_sid"`
	ServiceName  string    `json:"service_name"`
	OperatingDay string    `json:"operating_day"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewQueueCreatedEvent creates a new queue created event
func NewQueueCreatedEvent(queueSID, serviceSID, serviceName, operatingDay string, createdAt time.Time) QueueCreatedEvent {
	return QueueCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("queue:%s", queueSID),
			EventType:   EventTypeQueueCreated,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		QueueSID:     queueSID,
		ServiceSID:   serviceSID,
		ServiceName:  serviceName,
		OperatingDay: operatingDay,
		CreatedAt:    createdAt,
	}
}

// QueuePausedEvent is emitted when calling is suspended
type QueuePausedEvent struct {
	events.BaseEvent
	QueueSID string    `json:"queue_sid"`
	PausedAt time.Time `json:"paused_at"`
}

// NewQueuePausedEvent creates a new queue paused event
func NewQueuePausedEvent(queueSID string) QueuePausedEvent {
	return QueuePausedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("queue:%s", queueSID),
			EventType:   EventTypeQueuePaused,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		QueueSID: queueSID,
		PausedAt: time.Now(),
	}
}

// QueueResumedEvent is emitted when calling resumes
type QueueResumedEvent struct {
	events.BaseEvent
	QueueSID  string    `json:"queue_sid"`
	ResumedAt time.Time `json:"resumed_at"`
}

// NewQueueResumedEvent creates a new queue resumed event
func NewQueueResumedEvent(queueSID string) QueueResumedEvent {
	return QueueResumedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("queue:%s", queueSID),
			EventType:   EventTypeQueueResumed,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		QueueSID:  queueSID,
		ResumedAt: time.Now(),
	}
}

// QueueClosedEvent is emitted once when a queue closes for good
type QueueClosedEvent struct {
	events.BaseEvent
	QueueSID string    `json:"queue_sid"`
	ClosedAt time.Time `json:"closed_at"`
}

// NewQueueClosedEvent creates a new queue closed event
func NewQueueClosedEvent(queueSID string, closedAt time.Time) QueueClosedEvent {
	return QueueClosedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("queue:%s", queueSID),
			EventType:   EventTypeQueueClosed,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		QueueSID: queueSID,
		ClosedAt: closedAt,
	}
}

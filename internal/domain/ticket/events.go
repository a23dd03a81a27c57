package ticket

import (
	"fmt"
	"time"

	"lineup/internal/domain/shared/events"
)

// Event types
const (
	EventTypeTicketCreated      = "ticket.created"
	EventTypeTicketCalled       = "ticket.called"
	EventTypeTicketStateChanged = "ticket.state.changed"
	EventTypeTicketCompleted    = "ticket.completed"
)

// UpNextEntry is a snapshot of a waiting ticket included in call
// announcements so displays can show who is coming up.
type UpNextEntry struct {
	TicketSID string `json:"ticket_sid"`
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Position  int    `json:"position"`
}

// TicketCreatedEvent is emitted when a customer books a ticket
type TicketCreatedEvent struct {
	events.BaseEvent
	TicketSID    string    `json:"ticket_sid"`
	QueueSID     string    `json:"queue_sid"`
	Number       int       `json:"number"`
	Label        string    `json:"label"`
	CustomerName string    `json:"customer_name,omitempty"`
	Position     int       `json:"position"`
	WaitingCount int       `json:"waiting_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewTicketCreatedEvent creates a new ticket created event
func NewTicketCreatedEvent(ticketSID, queueSID string, number int, label, customerName string, position, waitingCount int, createdAt time.Time) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%s", ticketSID),
			EventType:   EventTypeTicketCreated,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		TicketSID:    ticketSID,
		QueueSID:     queueSID,
		Number:       number,
		Label:        label,
		CustomerName: customerName,
		Position:     position,
		WaitingCount: waitingCount,
		CreatedAt:    createdAt,
	}
}

// TicketCalledEvent is emitted when a ticket is called to a counter.
// UpNext carries the head of the waiting line so consumers never have
// to query the engine.
type TicketCalledEvent struct {
	events.BaseEvent
	TicketSID    string        `json:"ticket_sid"`
	QueueSID     string        `json:"queue_sid"`
	Number       int           `json:"number"`
	Label        string        `json:"label"`
	CustomerName string        `json:"customer_name,omitempty"`
	CounterSID   string        `json:"counter_sid,omitempty"`
	CounterName  string        `json:"counter_name,omitempty"`
	CalledAt     time.Time     `json:"called_at"`
	UpNext       []UpNextEntry `json:"up_next"`
}

// NewTicketCalledEvent creates a new ticket called event
func NewTicketCalledEvent(ticketSID, queueSID string, number int, label, customerName, counterSID, counterName string, calledAt time.Time, upNext []UpNextEntry) TicketCalledEvent {
	return TicketCalledEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%s", ticketSID),
			EventType:   EventTypeTicketCalled,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		TicketSID:    ticketSID,
		QueueSID:     queueSID,
		Number:       number,
		Label:        label,
		CustomerName: customerName,
		CounterSID:   counterSID,
		CounterName:  counterName,
		CalledAt:     calledAt,
		UpNext:       upNext,
	}
}

// TicketStateChangedEvent is emitted on every ticket status transition
type TicketStateChangedEvent struct {
	events.BaseEvent
	TicketSID string    `json:"ticket_sid"`
	QueueSID  string    `json:"queue_sid"`
	Number    int       `json:"number"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}

// NewTicketStateChangedEvent creates a new ticket state changed event
func NewTicketStateChangedEvent(ticketSID, queueSID string, number int, oldStatus, newStatus string) TicketStateChangedEvent {
	return TicketStateChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%s", ticketSID),
			EventType:   EventTypeTicketStateChanged,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		TicketSID: ticketSID,
		QueueSID:  queueSID,
		Number:    number,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedAt: time.Now(),
	}
}

// TicketCompletedEvent is emitted when service for a ticket finishes.
// It carries the timestamp trail plus the derived durations so reporting
// never has to read engine state.
type TicketCompletedEvent struct {
	events.BaseEvent
	TicketSID      string    `json:"ticket_sid"`
	QueueSID       string    `json:"queue_sid"`
	Number         int       `json:"number"`
	IssuedAt       time.Time `json:"issued_at"`
	CalledAt       time.Time `json:"called_at"`
	CompletedAt    time.Time `json:"completed_at"`
	DwellSeconds   float64   `json:"dwell_seconds"`
	ServiceSeconds float64   `json:"service_seconds"`
}

// NewTicketCompletedEvent creates a new ticket completed event.
// Dwell runs from issue to completion, service from call to completion.
func NewTicketCompletedEvent(ticketSID, queueSID string, number int, issuedAt, calledAt, completedAt time.Time) TicketCompletedEvent {
	return TicketCompletedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%s", ticketSID),
			EventType:   EventTypeTicketCompleted,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		TicketSID:      ticketSID,
		QueueSID:       queueSID,
		Number:         number,
		IssuedAt:       issuedAt,
		CalledAt:       calledAt,
		CompletedAt:    completedAt,
		DwellSeconds:   completedAt.Sub(issuedAt).Seconds(),
		ServiceSeconds: completedAt.Sub(calledAt).Seconds(),
	}
}

package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusWaiting   TicketStatus = "waiting"
	StatusCalled    TicketStatus = "called"
	StatusServing   TicketStatus = "serving"
	StatusCompleted TicketStatus = "completed"
	StatusCancelled TicketStatus = "cancelled"
	StatusNoShow    TicketStatus = "no_show"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusWaiting:   true,
	StatusCalled:    true,
	StatusServing:   true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusWaiting: {
		StatusCalled,
		StatusCancelled,
	},
	StatusCalled: {
		StatusServing,
		StatusCancelled,
		StatusNoShow,
	},
	StatusServing: {
		StatusCompleted,
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the ticket has permanently left the queue.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusCompleted || ts == StatusCancelled || ts == StatusNoShow
}

// IsActive reports whether the ticket still holds a place in the flow.
func (ts TicketStatus) IsActive() bool {
	return ts == StatusWaiting || ts == StatusCalled || ts == StatusServing
}

// HoldsServingSlot reports whether the ticket occupies the queue's single
// serving slot. A called ticket keeps the slot until it is served, skipped
// or cancelled.
func (ts TicketStatus) HoldsServingSlot() bool {
	return ts == StatusCalled || ts == StatusServing
}

func (ts TicketStatus) IsWaiting() bool {
	return ts == StatusWaiting
}

func (ts TicketStatus) IsCalled() bool {
	return ts == StatusCalled
}

func (ts TicketStatus) IsServing() bool {
	return ts == StatusServing
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

func (ts TicketStatus) IsNoShow() bool {
	return ts == StatusNoShow
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "lineup/internal/domain/ticket/valueobjects"
)

// Ticket represents a customer's numbered place in a queue. It is the
// ticket aggregate root: all lifecycle transitions go through its methods
// so the status machine and timestamps stay consistent.
type Ticket struct {
	id           uint
	sid          string
	queueID      uint
	number       int
	customerRef  string
	customerName string
	status       vo.TicketStatus
	counterID    *uint
	calledAt     *time.Time
	servingAt    *time.Time
	completedAt  *time.Time
	cancelledAt  *time.Time
	noShowAt     *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTicket creates a new waiting ticket
func NewTicket(sid string, queueID uint, number int, customerRef, customerName string) (*Ticket, error) {
	if sid == "" {
		return nil, fmt.Errorf("ticket SID is required")
	}
	if queueID == 0 {
		return nil, fmt.Errorf("queue ID is required")
	}
	if number <= 0 {
		return nil, fmt.Errorf("ticket number must be positive")
	}

	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return nil, ErrCustomerRefRequired
	}

	if customerName != "" {
		name, err := vo.NewCustomerName(customerName)
		if err != nil {
			return nil, err
		}
		customerName = name.String()
	}

	now := time.Now()
	return &Ticket{
		sid:          sid,
		queueID:      queueID,
		number:       number,
		customerRef:  customerRef,
		customerName: customerName,
		status:       vo.StatusWaiting,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTicket reconstructs a ticket from persistence
func ReconstructTicket(
	id uint,
	sid string,
	queueID uint,
	number int,
	customerRef, customerName string,
	status vo.TicketStatus,
	counterID *uint,
	calledAt, servingAt, completedAt, cancelledAt, noShowAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("ticket SID is required")
	}
	if queueID == 0 {
		return nil, fmt.Errorf("queue ID is required")
	}
	if number <= 0 {
		return nil, fmt.Errorf("ticket number must be positive")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}

	return &Ticket{
		id:           id,
		sid:          sid,
		queueID:      queueID,
		number:       number,
		customerRef:  customerRef,
		customerName: customerName,
		status:       status,
		counterID:    counterID,
		calledAt:     calledAt,
		servingAt:    servingAt,
		completedAt:  completedAt,
		cancelledAt:  cancelledAt,
		noShowAt:     noShowAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the ticket ID
func (t *Ticket) ID() uint {
	return t.id
}

// SID returns the public short identifier
func (t *Ticket) SID() string {
	return t.sid
}

// QueueID returns the owning queue's ID
func (t *Ticket) QueueID() uint {
	return t.queueID
}

// Number returns the per-queue ticket number
func (t *Ticket) Number() int {
	return t.number
}

// CustomerRef returns the opaque customer reference
func (t *Ticket) CustomerRef() string {
	return t.customerRef
}

// CustomerName returns the optional display name
func (t *Ticket) CustomerName() string {
	return t.customerName
}

// Status returns the ticket status
func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

// CounterID returns the counter the ticket was called to, if any
func (t *Ticket) CounterID() *uint {
	return t.counterID
}

// CalledAt returns when the ticket was called
func (t *Ticket) CalledAt() *time.Time {
	return t.calledAt
}

// ServingAt returns when service started
func (t *Ticket) ServingAt() *time.Time {
	return t.servingAt
}

// CompletedAt returns when service finished
func (t *Ticket) CompletedAt() *time.Time {
	return t.completedAt
}

// CancelledAt returns when the ticket was cancelled
func (t *Ticket) CancelledAt() *time.Time {
	return t.cancelledAt
}

// NoShowAt returns when the ticket was marked as a no-show
func (t *Ticket) NoShowAt() *time.Time {
	return t.noShowAt
}

// Version returns the aggregate version for optimistic locking
func (t *Ticket) Version() int {
	return t.version
}

// CreatedAt returns when the ticket was issued
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns when the ticket was last updated
func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Call transitions the ticket from waiting to called, optionally
// recording the counter it should present at.
func (t *Ticket) Call(counterID *uint) error {
	if !t.status.CanTransitionTo(vo.StatusCalled) {
		return ErrInvalidTransition(t.status.String(), vo.StatusCalled.String())
	}

	now := time.Now()
	t.status = vo.StatusCalled
	t.counterID = counterID
	t.calledAt = &now
	t.updatedAt = now
	t.version++

	return nil
}

// StartServing transitions the ticket from called to serving
func (t *Ticket) StartServing() error {
	if !t.status.CanTransitionTo(vo.StatusServing) {
		return ErrInvalidTransition(t.status.String(), vo.StatusServing.String())
	}

	now := time.Now()
	t.status = vo.StatusServing
	t.servingAt = &now
	t.updatedAt = now
	t.version++

	return nil
}

// Complete transitions the ticket from serving to completed
func (t *Ticket) Complete() error {
	if !t.status.CanTransitionTo(vo.StatusCompleted) {
		return ErrInvalidTransition(t.status.String(), vo.StatusCompleted.String())
	}

	now := time.Now()
	t.status = vo.StatusCompleted
	t.completedAt = &now
	t.updatedAt = now
	t.version++

	return nil
}

// MarkNoShow transitions a called ticket to no_show after the customer
// failed to appear.
func (t *Ticket) MarkNoShow() error {
	if !t.status.CanTransitionTo(vo.StatusNoShow) {
		return ErrInvalidTransition(t.status.String(), vo.StatusNoShow.String())
	}

	now := time.Now()
	t.status = vo.StatusNoShow
	t.noShowAt = &now
	t.updatedAt = now
	t.version++

	return nil
}

// Cancel transitions a waiting or called ticket to cancelled
func (t *Ticket) Cancel() error {
	if !t.status.CanTransitionTo(vo.StatusCancelled) {
		return ErrInvalidTransition(t.status.String(), vo.StatusCancelled.String())
	}

	now := time.Now()
	t.status = vo.StatusCancelled
	t.cancelledAt = &now
	t.updatedAt = now
	t.version++

	return nil
}

// IsTerminal reports whether the ticket has permanently left the queue
func (t *Ticket) IsTerminal() bool {
	return t.status.IsTerminal()
}

// HoldsServingSlot reports whether the ticket occupies its queue's
// serving slot.
func (t *Ticket) HoldsServingSlot() bool {
	return t.status.HoldsServingSlot()
}

// WaitTime returns how long the customer waited before being called.
// The second return value is false until the ticket has been called.
func (t *Ticket) WaitTime() (time.Duration, bool) {
	if t.calledAt == nil {
		return 0, false
	}
	return t.calledAt.Sub(t.createdAt), true
}

// ServiceTime returns the time between the call and completion.
// The second return value is false until the ticket is completed.
func (t *Ticket) ServiceTime() (time.Duration, bool) {
	if t.completedAt == nil || t.calledAt == nil {
		return 0, false
	}
	return t.completedAt.Sub(*t.calledAt), true
}

// DwellTime returns the total time from issue to completion.
// The second return value is false until the ticket is completed.
func (t *Ticket) DwellTime() (time.Duration, bool) {
	if t.completedAt == nil {
		return 0, false
	}
	return t.completedAt.Sub(t.createdAt), true
}

// Validate performs domain-level validation
func (t *Ticket) Validate() error {
	if t.sid == "" {
		return fmt.Errorf("ticket SID is required")
	}
	if t.queueID == 0 {
		return fmt.Errorf("queue ID is required")
	}
	if t.number <= 0 {
		return fmt.Errorf("ticket number must be positive")
	}
	if t.customerRef == "" {
		return ErrCustomerRefRequired
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status: %s", t.status)
	}
	return nil
}

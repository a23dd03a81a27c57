package queue

import (
	"fmt"
	"time"

	vo "lineup/internal/domain/queue/valueobjects"
)

// Queue represents one service's line for a single operating day. It is
// the queue aggregate root: ticket numbers are allocated here so they
// stay strictly increasing and are never reused, and the single serving
// slot is owned here so at most one ticket is being handled at a time.
type Queue struct {
	id              uint
	sid             string
	serviceID       uint
	operatingDay    time.Time
	status          vo.QueueStatus
	nextNumber      int
	currentTicketID *uint
	announcement    string
	closedAt        *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewQueue creates an active queue for a service on the given operating day
func NewQueue(sid string, serviceID uint, operatingDay time.Time) (*Queue, error) {
	if sid == "" {
		return nil, fmt.Errorf("queue SID is required")
	}
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}
	if operatingDay.IsZero() {
		return nil, fmt.Errorf("operating day is required")
	}

	now := time.Now()
	return &Queue{
		sid:          sid,
		serviceID:    serviceID,
		operatingDay: operatingDay,
		status:       vo.StatusActive,
		nextNumber:   1,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructQueue reconstructs a queue from persistence
func ReconstructQueue(
	id uint,
	sid string,
	serviceID uint,
	operatingDay time.Time,
	status vo.QueueStatus,
	nextNumber int,
	currentTicketID *uint,
	announcement string,
	closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Queue, error) {
	if id == 0 {
		return nil, fmt.Errorf("queue ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("queue SID is required")
	}
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid queue status: %s", status)
	}
	if nextNumber < 1 {
		return nil, fmt.Errorf("next number must be at least 1")
	}

	return &Queue{
		id:              id,
		sid:             sid,
		serviceID:       serviceID,
		operatingDay:    operatingDay,
		status:          status,
		nextNumber:      nextNumber,
		currentTicketID: currentTicketID,
		announcement:    announcement,
		closedAt:        closedAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// ID returns the queue ID
func (q *Queue) ID() uint {
	return q.id
}

// SID returns the public short identifier
func (q *Queue) SID() string {
	return q.sid
}

// ServiceID returns the owning service's ID
func (q *Queue) ServiceID() uint {
	return q.serviceID
}

// OperatingDay returns the day this queue serves
func (q *Queue) OperatingDay() time.Time {
	return q.operatingDay
}

// Status returns the queue status
func (q *Queue) Status() vo.QueueStatus {
	return q.status
}

// NextNumber returns the number the next booked ticket will receive
func (q *Queue) NextNumber() int {
	return q.nextNumber
}

// CurrentTicketID returns the ticket holding the serving slot, if any
func (q *Queue) CurrentTicketID() *uint {
	return q.currentTicketID
}

// Announcement returns the queue's markdown announcement
func (q *Queue) Announcement() string {
	return q.announcement
}

// ClosedAt returns when the queue was closed
func (q *Queue) ClosedAt() *time.Time {
	return q.closedAt
}

// Version returns the aggregate version for optimistic locking
func (q *Queue) Version() int {
	return q.version
}

// CreatedAt returns when the queue was created
func (q *Queue) CreatedAt() time.Time {
	return q.createdAt
}

// UpdatedAt returns when the queue was last updated
func (q *Queue) UpdatedAt() time.Time {
	return q.updatedAt
}

// SetID sets the queue ID (only for persistence layer use)
func (q *Queue) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("queue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("queue ID cannot be zero")
	}
	q.id = id
	return nil
}

// AllocateNumber hands out the next ticket number. Numbers are strictly
// increasing and never reused, even when tickets are cancelled.
func (q *Queue) AllocateNumber() (int, error) {
	if q.status.IsClosed() {
		return 0, ErrQueueClosed
	}

	number := q.nextNumber
	q.nextNumber++
	q.updatedAt = time.Now()
	q.version++

	return number, nil
}

// Pause suspends calling. Booking stays open while paused.
func (q *Queue) Pause() error {
	if q.status.IsPaused() {
		return nil
	}
	if q.status.IsClosed() {
		return ErrQueueClosed
	}

	if !q.status.CanTransitionTo(vo.StatusPaused) {
		return ErrInvalidTransition(q.status.String(), vo.StatusPaused.String())
	}

	q.status = vo.StatusPaused
	q.updatedAt = time.Now()
	q.version++

	return nil
}

// Resume reopens calling on a paused queue
func (q *Queue) Resume() error {
	if q.status.IsActive() {
		return nil
	}
	if q.status.IsClosed() {
		return ErrQueueClosed
	}

	if !q.status.CanTransitionTo(vo.StatusActive) {
		return ErrInvalidTransition(q.status.String(), vo.StatusActive.String())
	}

	q.status = vo.StatusActive
	q.updatedAt = time.Now()
	q.version++

	return nil
}

// Close permanently closes the queue. Closing an already closed queue
// is a no-op; the return value reports whether the state changed.
func (q *Queue) Close() bool {
	if q.status.IsClosed() {
		return false
	}

	now := time.Now()
	q.status = vo.StatusClosed
	q.closedAt = &now
	q.updatedAt = now
	q.version++

	return true
}

// OccupyServingSlot marks the given ticket as currently being handled.
// At most one ticket holds the slot at a time.
func (q *Queue) OccupyServingSlot(ticketID uint) error {
	if ticketID == 0 {
		return fmt.Errorf("ticket ID is required")
	}
	if q.currentTicketID != nil {
		if *q.currentTicketID == ticketID {
			return nil
		}
		return ErrServingSlotOccupied
	}

	q.currentTicketID = &ticketID
	q.updatedAt = time.Now()
	q.version++

	return nil
}

// ReleaseServingSlot frees the slot if the given ticket holds it.
// Releasing for a ticket that does not hold the slot is a no-op.
func (q *Queue) ReleaseServingSlot(ticketID uint) {
	if q.currentTicketID == nil || *q.currentTicketID != ticketID {
		return
	}

	q.currentTicketID = nil
	q.updatedAt = time.Now()
	q.version++
}

// HasServingTicket reports whether the serving slot is occupied
func (q *Queue) HasServingTicket() bool {
	return q.currentTicketID != nil
}

// CanAcceptTickets reports whether booking is allowed. Paused queues
// keep accepting tickets; only closed queues refuse them.
func (q *Queue) CanAcceptTickets() bool {
	return !q.status.IsClosed()
}

// CanCallNext reports whether staff may call the next ticket
func (q *Queue) CanCallNext() bool {
	return q.status.IsActive()
}

// UpdateAnnouncement replaces the queue's markdown announcement
func (q *Queue) UpdateAnnouncement(markdown string) {
	if q.announcement == markdown {
		return
	}

	q.announcement = markdown
	q.updatedAt = time.Now()
	q.version++
}

// IsActive reports whether the queue is actively calling
func (q *Queue) IsActive() bool {
	return q.status.IsActive()
}

// IsPaused reports whether the queue is paused
func (q *Queue) IsPaused() bool {
	return q.status.IsPaused()
}

// IsClosed reports whether the queue is closed
func (q *Queue) IsClosed() bool {
	return q.status.IsClosed()
}

// Validate performs domain-level validation
func (q *Queue) Validate() error {
	if q.sid == "" {
		return fmt.Errorf("queue SID is required")
	}
	if q.serviceID == 0 {
		return fmt.Errorf("service ID is required")
	}
	if !q.status.IsValid() {
		return fmt.Errorf("invalid status: %s", q.status)
	}
	if q.nextNumber < 1 {
		return fmt.Errorf("next number must be at least 1")
	}
	return nil
}

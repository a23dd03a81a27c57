package ticket

import (
	"context"

	vo "lineup/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetBySID(ctx context.Context, sid string) (*Ticket, error)
	GetByQueueAndNumber(ctx context.Context, queueID uint, number int) (*Ticket, error)
	// FindActiveByCustomerRef returns the customer's non-terminal ticket
	// in the given queue, or nil when there is none.
	FindActiveByCustomerRef(ctx context.Context, queueID uint, customerRef string) (*Ticket, error)
	// CountWaitingBefore counts waiting tickets issued before the given
	// number. Positions are derived from this, never stored.
	CountWaitingBefore(ctx context.Context, queueID uint, number int) (int64, error)
	CountByStatus(ctx context.Context, queueID uint, status vo.TicketStatus) (int64, error)
	// NextWaiting returns the waiting ticket with the lowest number,
	// or nil when the queue is empty.
	NextWaiting(ctx context.Context, queueID uint) (*Ticket, error)
	// ListWaiting returns waiting tickets in call order, up to limit.
	ListWaiting(ctx context.Context, queueID uint, limit int) ([]*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	QueueID     *uint
	Status      *vo.TicketStatus
	CustomerRef *string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

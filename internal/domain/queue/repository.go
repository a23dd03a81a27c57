package queue

import (
	"context"
	"time"

	vo "lineup/internal/domain/queue/valueobjects"
)

type QueueRepository interface {
	Save(ctx context.Context, queue *Queue) error
	Update(ctx context.Context, queue *Queue) error
	GetByID(ctx context.Context, queueID uint) (*Queue, error)
	GetBySID(ctx context.Context, sid string) (*Queue, error)
	// GetByServiceAndDay returns the queue a service runs on the given
	// operating day, or nil when none exists.
	GetByServiceAndDay(ctx context.Context, serviceID uint, operatingDay time.Time) (*Queue, error)
	List(ctx context.Context, filters QueueFilter) ([]*Queue, int64, error)
	// ListOpenBefore returns queues that are still open for an operating
	// day earlier than the given day. The end-of-day sweeper closes them.
	ListOpenBefore(ctx context.Context, operatingDay time.Time) ([]*Queue, error)
}

type QueueFilter struct {
	ServiceID    *uint
	Status       *vo.QueueStatus
	OperatingDay *time.Time
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

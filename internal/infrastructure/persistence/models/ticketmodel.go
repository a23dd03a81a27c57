package models

import "lineup/internal/shared/constants"

// TicketModel is the persistence shape of a queue ticket. The unique
// index on (queue_id, number) is the hard backstop for number
// allocation: two instances racing the same queue cannot both commit
// the same number.
type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"uniqueIndex;size:50;not null"`
	QueueID      uint   `gorm:"not null;uniqueIndex:idx_queue_number,priority:1;index:idx_queue_status,priority:1"`
	Number       int    `gorm:"not null;uniqueIndex:idx_queue_number,priority:2"`
	CustomerRef  string `gorm:"size:191;not null;index"`
	CustomerName string `gorm:"size:100"`
	Status       string `gorm:"size:20;not null;index:idx_queue_status,priority:2"`
	CounterID    *uint  `gorm:"index"`
	CalledAt     *int64
	ServingAt    *int64
	CompletedAt  *int64
	CancelledAt  *int64
	NoShowAt     *int64
	Version      int   `gorm:"not null;default:1"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

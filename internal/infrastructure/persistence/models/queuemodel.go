package models

import (
	"time"

	"lineup/internal/shared/constants"
)

// QueueModel is the persistence shape of one service's daily queue.
// OperatingDay is stored as the canonical UTC start instant of the
// business day; (service_id, operating_day) is unique so a service can
// run at most one queue per day.
type QueueModel struct {
	ID              uint      `gorm:"primaryKey"`
	SID             string    `gorm:"uniqueIndex;size:50;not null"`
	ServiceID       uint      `gorm:"not null;uniqueIndex:idx_service_day,priority:1"`
	OperatingDay    time.Time `gorm:"not null;uniqueIndex:idx_service_day,priority:2;index"`
	Status          string    `gorm:"size:20;not null;index"`
	NextNumber      int       `gorm:"not null;default:1"`
	CurrentTicketID *uint
	Announcement    string `gorm:"type:text"`
	ClosedAt        *int64
	Version         int   `gorm:"not null;default:1"`
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (QueueModel) TableName() string {
	return constants.TableQueues
}

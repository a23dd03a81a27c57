package models

import "lineup/internal/shared/constants"

// QueueDailyStatsModel is one row of reporting aggregates per queue and
// operating day. The (queue_sid, day) unique index lets collectors
// upsert increments atomically instead of read-modify-write.
type QueueDailyStatsModel struct {
	ID                  uint    `gorm:"primaryKey"`
	QueueSID            string  `gorm:"size:50;not null;uniqueIndex:idx_queue_day,priority:1"`
	Day                 string  `gorm:"size:10;not null;uniqueIndex:idx_queue_day,priority:2;index"`
	Issued              int64   `gorm:"not null;default:0"`
	Completed           int64   `gorm:"not null;default:0"`
	Cancelled           int64   `gorm:"not null;default:0"`
	NoShows             int64   `gorm:"not null;default:0"`
	DwellSecondsTotal   float64 `gorm:"not null;default:0"`
	ServiceSecondsTotal float64 `gorm:"not null;default:0"`
	MaxDwellSeconds     float64 `gorm:"not null;default:0"`
	MaxServiceSeconds   float64 `gorm:"not null;default:0"`
	CreatedAt           int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (QueueDailyStatsModel) TableName() string {
	return constants.TableQueueDailyStats
}

package models

import (
	"gorm.io/datatypes"

	"lineup/internal/shared/constants"
)

// TicketEventModel is the append-only audit trail of domain events. It
// records queue and ticket events alike; the name keeps the table next
// to the tickets it mostly describes.
type TicketEventModel struct {
	ID           uint           `gorm:"primaryKey"`
	EventType    string         `gorm:"size:50;not null;index"`
	AggregateSID string         `gorm:"size:50;not null;index"`
	Payload      datatypes.JSON `gorm:"not null"`
	OccurredAt   int64          `gorm:"not null;index"`
	CreatedAt    int64          `gorm:"autoCreateTime:milli;not null"`
}

func (TicketEventModel) TableName() string {
	return constants.TableTicketEvents
}

package models

import "lineup/internal/shared/constants"

type ServiceModel struct {
	ID               uint   `gorm:"primaryKey"`
	SID              string `gorm:"uniqueIndex;size:50;not null"`
	Name             string `gorm:"size:100;not null"`
	Code             string `gorm:"uniqueIndex;size:10;not null"`
	Description      string `gorm:"size:500"`
	AvgHandleSeconds uint   `gorm:"not null;default:180"`
	Active           bool   `gorm:"not null;default:true;index"`
	Version          int    `gorm:"not null;default:1"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ServiceModel) TableName() string {
	return constants.TableServices
}

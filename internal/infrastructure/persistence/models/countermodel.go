package models

import "lineup/internal/shared/constants"

type CounterModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"uniqueIndex;size:50;not null"`
	Name      string `gorm:"size:100;not null"`
	Active    bool   `gorm:"not null;default:true"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CounterModel) TableName() string {
	return constants.TableCounters
}

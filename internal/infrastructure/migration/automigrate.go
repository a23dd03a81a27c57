package migration

import (
	"lineup/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ServiceModel{},
		&models.QueueModel{},
		&models.TicketModel{},
		&models.CounterModel{},
		&models.QueueDailyStatsModel{},
		&models.TicketEventModel{},
	}
}

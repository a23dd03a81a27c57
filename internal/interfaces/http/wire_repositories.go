package http

import (
	"gorm.io/gorm"

	"lineup/internal/domain/counter"
	"lineup/internal/domain/queue"
	"lineup/internal/domain/reporting"
	"lineup/internal/domain/service"
	"lineup/internal/domain/ticket"
	"lineup/internal/infrastructure/repository"
	"lineup/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	queueRepo   queue.QueueRepository
	ticketRepo  ticket.TicketRepository
	serviceRepo service.ServiceRepository
	counterRepo counter.CounterRepository
	statsRepo   reporting.StatsRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		queueRepo:   repository.NewQueueRepository(db),
		ticketRepo:  repository.NewTicketRepository(db),
		serviceRepo: repository.NewServiceRepository(db),
		counterRepo: repository.NewCounterRepository(db),
		statsRepo:   repository.NewDailyStatsRepository(db, log),
	}
}

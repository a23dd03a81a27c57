package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/service"
	"lineup/internal/domain/ticket"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type FindTicketCommand struct {
	QueueSID string
	Number   int
}

type FindTicketUseCase struct {
	queueRepo   queue.QueueRepository
	ticketRepo  ticket.TicketRepository
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewFindTicketUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *FindTicketUseCase {
	return &FindTicketUseCase{
		queueRepo:   queueRepo,
		ticketRepo:  ticketRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute looks a ticket up by queue and number, the pair printed on a
// physical stub.
func (uc *FindTicketUseCase) Execute(ctx context.Context, cmd FindTicketCommand) (*TicketDetail, error) {
	q, err := uc.queueRepo.GetBySID(ctx, cmd.QueueSID)
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	tk, err := uc.ticketRepo.GetByQueueAndNumber(ctx, q.ID(), cmd.Number)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "queue_sid", cmd.QueueSID, "number", cmd.Number)
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	if tk == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	return newTicketDetail(ctx, uc.queueRepo, uc.ticketRepo, uc.serviceRepo, tk)
}

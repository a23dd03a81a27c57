package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

type StartServingCommand struct {
	TicketSID string
}

// TicketStateResult reports a ticket's state after a lifecycle
// operation. Shared by serve, complete, no-show and cancel.
type TicketStateResult struct {
	TicketSID string
	QueueSID  string
	Number    int
	Status    string
}

type StartServingUseCase struct {
	queueRepo  queue.QueueRepository
	ticketRepo ticket.TicketRepository
	locks      *lock.KeyedMutex
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewStartServingUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *StartServingUseCase {
	return &StartServingUseCase{
		queueRepo:  queueRepo,
		ticketRepo: ticketRepo,
		locks:      locks,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute moves a called ticket to serving, marking the moment the
// customer reached the counter.
func (uc *StartServingUseCase) Execute(ctx context.Context, cmd StartServingCommand) (*TicketStateResult, error) {
	probe, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if probe == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	q, err := uc.queueRepo.GetByID(ctx, probe.QueueID())
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	release := uc.locks.Lock(q.SID())
	defer release()

	// Reload under the lock; the probe may be stale.
	tk, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if tk == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	prevStatus := tk.Status().String()
	if err := tk.StartServing(); err != nil {
		return nil, apperrors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, tk); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_sid", tk.SID())
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	release()

	publishEvents(uc.publisher, uc.logger,
		ticket.NewTicketStateChangedEvent(tk.SID(), q.SID(), tk.Number(), prevStatus, tk.Status().String()),
	)

	uc.logger.Infow("ticket serving", "ticket_sid", tk.SID(), "queue_sid", q.SID(), "number", tk.Number())

	return &TicketStateResult{
		TicketSID: tk.SID(),
		QueueSID:  q.SID(),
		Number:    tk.Number(),
		Status:    tk.Status().String(),
	}, nil
}

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

type CompleteTicketCommand struct {
	TicketSID string
}

type CompleteTicketUseCase struct {
	queueRepo  queue.QueueRepository
	ticketRepo ticket.TicketRepository
	txManager  TxManager
	locks      *lock.KeyedMutex
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCompleteTicketUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	txManager TxManager,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CompleteTicketUseCase {
	return &CompleteTicketUseCase{
		queueRepo:  queueRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		locks:      locks,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute finishes serving a ticket and frees the queue's serving slot,
// so the next customer can be called.
func (uc *CompleteTicketUseCase) Execute(ctx context.Context, cmd CompleteTicketCommand) (*TicketStateResult, error) {
	probe, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if probe == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	lockQueue, err := uc.queueRepo.GetByID(ctx, probe.QueueID())
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if lockQueue == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	release := uc.locks.Lock(lockQueue.SID())
	defer release()

	tk, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if tk == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	q, err := uc.queueRepo.GetBySID(ctx, lockQueue.SID())
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", lockQueue.SID())
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	prevStatus := tk.Status().String()
	if err := tk.Complete(); err != nil {
		return nil, apperrors.NewInvalidTransitionError(err.Error())
	}
	q.ReleaseServingSlot(tk.ID())

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			return err
		}
		return uc.queueRepo.Update(txCtx, q)
	})
	if err != nil {
		uc.logger.Errorw("failed to complete ticket", "error", err, "ticket_sid", tk.SID())
		return nil, fmt.Errorf("failed to complete ticket: %w", err)
	}

	release()

	calledAt := tk.CreatedAt()
	if tk.CalledAt() != nil {
		calledAt = *tk.CalledAt()
	}
	publishEvents(uc.publisher, uc.logger,
		ticket.NewTicketStateChangedEvent(tk.SID(), q.SID(), tk.Number(), prevStatus, tk.Status().String()),
		ticket.NewTicketCompletedEvent(tk.SID(), q.SID(), tk.Number(), tk.CreatedAt(), calledAt, *tk.CompletedAt()),
	)

	uc.logger.Infow("ticket completed", "ticket_sid", tk.SID(), "queue_sid", q.SID(), "number", tk.Number())

	return &TicketStateResult{
		TicketSID: tk.SID(),
		QueueSID:  q.SID(),
		Number:    tk.Number(),
		Status:    tk.Status().String(),
	}, nil
}

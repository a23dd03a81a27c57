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

type MarkNoShowCommand struct {
	TicketSID string
}

type MarkNoShowUseCase struct {
	queueRepo  queue.QueueRepository
	ticketRepo ticket.TicketRepository
	txManager  TxManager
	locks      *lock.KeyedMutex
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewMarkNoShowUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	txManager TxManager,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *MarkNoShowUseCase {
	return &MarkNoShowUseCase{
		queueRepo:  queueRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		locks:      locks,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute marks a called ticket as a no-show and frees the serving
// slot. Only called tickets can be no-shows; a customer who was never
// called cannot have missed their turn.
func (uc *MarkNoShowUseCase) Execute(ctx context.Context, cmd MarkNoShowCommand) (*TicketStateResult, error) {
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
	if err := tk.MarkNoShow(); err != nil {
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
		uc.logger.Errorw("failed to mark no-show", "error", err, "ticket_sid", tk.SID())
		return nil, fmt.Errorf("failed to mark no-show: %w", err)
	}

	release()

	publishEvents(uc.publisher, uc.logger,
		ticket.NewTicketStateChangedEvent(tk.SID(), q.SID(), tk.Number(), prevStatus, tk.Status().String()),
	)

	uc.logger.Infow("ticket marked no-show", "ticket_sid", tk.SID(), "queue_sid", q.SID(), "number", tk.Number())

	return &TicketStateResult{
		TicketSID: tk.SID(),
		QueueSID:  q.SID(),
		Number:    tk.Number(),
		Status:    tk.Status().String(),
	}, nil
}

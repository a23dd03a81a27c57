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

type CancelTicketCommand struct {
	TicketSID string
}

type CancelTicketUseCase struct {
	queueRepo  queue.QueueRepository
	ticketRepo ticket.TicketRepository
	txManager  TxManager
	locks      *lock.KeyedMutex
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCancelTicketUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	txManager TxManager,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CancelTicketUseCase {
	return &CancelTicketUseCase{
		queueRepo:  queueRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		locks:      locks,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute cancels a waiting or called ticket. A cancelled ticket leaves
// the position ordering immediately; tickets behind it move up.
func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) (*TicketStateResult, error) {
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

	// A called ticket occupies the serving slot; cancelling it must
	// free the slot as well.
	heldSlot := tk.Status().HoldsServingSlot()

	prevStatus := tk.Status().String()
	if err := tk.Cancel(); err != nil {
		return nil, apperrors.NewInvalidTransitionError(err.Error())
	}

	if heldSlot {
		q, err := uc.queueRepo.GetBySID(ctx, lockQueue.SID())
		if err != nil {
			uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", lockQueue.SID())
			return nil, fmt.Errorf("failed to get queue: %w", err)
		}
		if q == nil {
			return nil, apperrors.NewNotFoundError("queue not found")
		}
		q.ReleaseServingSlot(tk.ID())

		err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
				return err
			}
			return uc.queueRepo.Update(txCtx, q)
		})
		if err != nil {
			uc.logger.Errorw("failed to cancel ticket", "error", err, "ticket_sid", tk.SID())
			return nil, fmt.Errorf("failed to cancel ticket: %w", err)
		}
	} else {
		if err := uc.ticketRepo.Update(ctx, tk); err != nil {
			uc.logger.Errorw("failed to cancel ticket", "error", err, "ticket_sid", tk.SID())
			return nil, fmt.Errorf("failed to cancel ticket: %w", err)
		}
	}

	release()

	publishEvents(uc.publisher, uc.logger,
		ticket.NewTicketStateChangedEvent(tk.SID(), lockQueue.SID(), tk.Number(), prevStatus, tk.Status().String()),
	)

	uc.logger.Infow("ticket cancelled", "ticket_sid", tk.SID(), "queue_sid", lockQueue.SID(), "number", tk.Number())

	return &TicketStateResult{
		TicketSID: tk.SID(),
		QueueSID:  lockQueue.SID(),
		Number:    tk.Number(),
		Status:    tk.Status().String(),
	}, nil
}

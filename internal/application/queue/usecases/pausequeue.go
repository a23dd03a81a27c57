package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/shared/events"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

type PauseQueueCommand struct {
	QueueSID string
}

// QueueStateResult reports a queue's lifecycle state after a control
// operation. Shared by pause, resume and close.
type QueueStateResult struct {
	QueueSID string
	Status   string
	ClosedAt *time.Time
}

type PauseQueueUseCase struct {
	queueRepo queue.QueueRepository
	locks     *lock.KeyedMutex
	publisher events.EventPublisher
	logger    logger.Interface
}

func NewPauseQueueUseCase(
	queueRepo queue.QueueRepository,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *PauseQueueUseCase {
	return &PauseQueueUseCase{
		queueRepo: queueRepo,
		locks:     locks,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *PauseQueueUseCase) Execute(ctx context.Context, cmd PauseQueueCommand) (*QueueStateResult, error) {
	release := uc.locks.Lock(cmd.QueueSID)
	defer release()

	q, err := uc.queueRepo.GetBySID(ctx, cmd.QueueSID)
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	wasPaused := q.IsPaused()
	if err := q.Pause(); err != nil {
		if errors.Is(err, queue.ErrQueueClosed) {
			return nil, apperrors.NewInvalidStateError("cannot pause a closed queue")
		}
		return nil, err
	}

	if !wasPaused {
		if err := uc.queueRepo.Update(ctx, q); err != nil {
			uc.logger.Errorw("failed to update queue", "error", err, "queue_sid", cmd.QueueSID)
			return nil, fmt.Errorf("failed to update queue: %w", err)
		}
	}

	release()

	if !wasPaused {
		publishEvents(uc.publisher, uc.logger, queue.NewQueuePausedEvent(q.SID()))
		uc.logger.Infow("queue paused", "queue_sid", q.SID())
	}

	return &QueueStateResult{
		QueueSID: q.SID(),
		Status:   q.Status().String(),
	}, nil
}

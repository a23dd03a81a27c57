package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/shared/events"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

type CloseQueueCommand struct {
	QueueSID string
}

type CloseQueueUseCase struct {
	queueRepo queue.QueueRepository
	locks     *lock.KeyedMutex
	publisher events.EventPublisher
	logger    logger.Interface
}

func NewCloseQueueUseCase(
	queueRepo queue.QueueRepository,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CloseQueueUseCase {
	return &CloseQueueUseCase{
		queueRepo: queueRepo,
		locks:     locks,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute closes the queue. Closing an already closed queue is a no-op
// and reports the existing state without emitting another event.
func (uc *CloseQueueUseCase) Execute(ctx context.Context, cmd CloseQueueCommand) (*QueueStateResult, error) {
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

	changed := q.Close()
	if changed {
		if err := uc.queueRepo.Update(ctx, q); err != nil {
			uc.logger.Errorw("failed to update queue", "error", err, "queue_sid", cmd.QueueSID)
			return nil, fmt.Errorf("failed to update queue: %w", err)
		}
	}

	release()

	if changed {
		publishEvents(uc.publisher, uc.logger, queue.NewQueueClosedEvent(q.SID(), *q.ClosedAt()))
		uc.logger.Infow("queue closed", "queue_sid", q.SID())
	}

	return &QueueStateResult{
		QueueSID: q.SID(),
		Status:   q.Status().String(),
		ClosedAt: q.ClosedAt(),
	}, nil
}

package usecases

import (
	"context"
	"errors"
	"fmt"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/shared/events"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

type ResumeQueueCommand struct {
	QueueSID string
}

type ResumeQueueUseCase struct {
	queueRepo queue.QueueRepository
	locks     *lock.KeyedMutex
	publisher events.EventPublisher
	logger    logger.Interface
}

func NewResumeQueueUseCase(
	queueRepo queue.QueueRepository,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ResumeQueueUseCase {
	return &ResumeQueueUseCase{
		queueRepo: queueRepo,
		locks:     locks,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *ResumeQueueUseCase) Execute(ctx context.Context, cmd ResumeQueueCommand) (*QueueStateResult, error) {
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

	wasActive := q.IsActive()
	if err := q.Resume(); err != nil {
		if errors.Is(err, queue.ErrQueueClosed) {
			return nil, apperrors.NewInvalidStateError("cannot resume a closed queue")
		}
		return nil, err
	}

	if !wasActive {
		if err := uc.queueRepo.Update(ctx, q); err != nil {
			uc.logger.Errorw("failed to update queue", "error", err, "queue_sid", cmd.QueueSID)
			return nil, fmt.Errorf("failed to update queue: %w", err)
		}
	}

	release()

	if !wasActive {
		publishEvents(uc.publisher, uc.logger, queue.NewQueueResumedEvent(q.SID()))
		uc.logger.Infow("queue resumed", "queue_sid", q.SID())
	}

	return &QueueStateResult{
		QueueSID: q.SID(),
		Status:   q.Status().String(),
	}, nil
}

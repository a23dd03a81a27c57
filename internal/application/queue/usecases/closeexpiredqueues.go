package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/shared/events"
	"lineup/internal/shared/biztime"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

type CloseExpiredQueuesCommand struct {
	// Before marks the first operating day that stays open. Zero means
	// today, so every queue from a previous day gets closed.
	Before time.Time
}

type CloseExpiredQueuesResult struct {
	Closed int
	Failed int
}

// CloseExpiredQueuesUseCase sweeps queues left open past their
// operating day. The scheduler runs it after the day rolls over;
// tickets keep whatever state they were in.
type CloseExpiredQueuesUseCase struct {
	queueRepo queue.QueueRepository
	locks     *lock.KeyedMutex
	publisher events.EventPublisher
	logger    logger.Interface
}

func NewCloseExpiredQueuesUseCase(
	queueRepo queue.QueueRepository,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CloseExpiredQueuesUseCase {
	return &CloseExpiredQueuesUseCase{
		queueRepo: queueRepo,
		locks:     locks,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *CloseExpiredQueuesUseCase) Execute(ctx context.Context, cmd CloseExpiredQueuesCommand) (*CloseExpiredQueuesResult, error) {
	before := cmd.Before
	if before.IsZero() {
		before = biztime.OperatingDay(biztime.NowUTC())
	}

	expired, err := uc.queueRepo.ListOpenBefore(ctx, before)
	if err != nil {
		uc.logger.Errorw("failed to list expired queues", "error", err)
		return nil, fmt.Errorf("failed to list expired queues: %w", err)
	}

	result := &CloseExpiredQueuesResult{}
	for _, stale := range expired {
		closed, err := uc.closeOne(ctx, stale.SID())
		if err != nil {
			uc.logger.Errorw("failed to close expired queue", "error", err, "queue_sid", stale.SID())
			result.Failed++
			continue
		}
		if closed {
			result.Closed++
		}
	}

	if result.Closed > 0 || result.Failed > 0 {
		uc.logger.Infow("expired queues swept", "closed", result.Closed, "failed", result.Failed)
	}
	return result, nil
}

func (uc *CloseExpiredQueuesUseCase) closeOne(ctx context.Context, queueSID string) (bool, error) {
	release := uc.locks.Lock(queueSID)
	defer release()

	q, err := uc.queueRepo.GetBySID(ctx, queueSID)
	if err != nil {
		return false, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return false, nil
	}

	if !q.Close() {
		return false, nil
	}
	if err := uc.queueRepo.Update(ctx, q); err != nil {
		return false, fmt.Errorf("failed to update queue: %w", err)
	}

	release()

	publishEvents(uc.publisher, uc.logger, queue.NewQueueClosedEvent(q.SID(), *q.ClosedAt()))
	return true, nil
}

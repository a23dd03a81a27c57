package scheduler

import (
	"context"
	"sync"
	"time"

	queueUsecases "lineup/internal/application/queue/usecases"
	"lineup/internal/shared/logger"
)

// DefaultSweepInterval is how often the closer looks for stale queues
// when no interval is configured.
const DefaultSweepInterval = 10 * time.Minute

// QueueScheduler closes queues left open past their operating day.
// Staff normally close queues explicitly; the sweep is the backstop
// for sites that simply walk away at the end of the day.
type QueueScheduler struct {
	closeExpiredUC *queueUsecases.CloseExpiredQueuesUseCase
	logger         logger.Interface
	stopChan       chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	interval       time.Duration
}

// NewQueueScheduler creates a QueueScheduler sweeping every sweepMinutes.
// A non-positive sweepMinutes falls back to DefaultSweepInterval.
func NewQueueScheduler(
	closeExpiredUC *queueUsecases.CloseExpiredQueuesUseCase,
	sweepMinutes int,
	logger logger.Interface,
) *QueueScheduler {
	interval := DefaultSweepInterval
	if sweepMinutes > 0 {
		interval = time.Duration(sweepMinutes) * time.Minute
	}

	return &QueueScheduler{
		closeExpiredUC: closeExpiredUC,
		logger:         logger,
		stopChan:       make(chan struct{}),
		interval:       interval,
	}
}

// Start starts the scheduler
func (s *QueueScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting queue scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully
func (s *QueueScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping queue scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("queue scheduler stopped")
	})
}

func (s *QueueScheduler) runLoop(ctx context.Context) {
	// Sweep immediately on startup to catch queues that stayed open
	// across a restart or overnight.
	s.sweepExpiredQueues(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("queue scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweepExpiredQueues(ctx)
		}
	}
}

func (s *QueueScheduler) sweepExpiredQueues(ctx context.Context) {
	s.logger.Debugw("expired queue sweep started")

	startTime := time.Now()

	result, err := s.closeExpiredUC.Execute(ctx, queueUsecases.CloseExpiredQueuesCommand{})
	if err != nil {
		s.logger.Errorw("failed to sweep expired queues",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Closed > 0 || result.Failed > 0 {
		s.logger.Infow("expired queue sweep finished",
			"closed", result.Closed,
			"failed", result.Failed,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no expired queues to close",
			"duration", time.Since(startTime),
		)
	}
}

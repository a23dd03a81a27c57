package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/reporting"
	"lineup/internal/shared/logger"
)

// --- mocks ---

type mockStatsRepository struct {
	GetByQueueAndDayFunc func(ctx context.Context, queueSID, day string) (*reporting.DailyStats, error)
	ListByDayFunc        func(ctx context.Context, day string) ([]*reporting.DailyStats, error)
}

func (m *mockStatsRepository) IncrementIssued(ctx context.Context, queueSID, day string) error {
	return nil
}

func (m *mockStatsRepository) RecordCompletion(ctx context.Context, queueSID, day string, dwellSeconds, serviceSeconds float64) error {
	return nil
}

func (m *mockStatsRepository) IncrementCancelled(ctx context.Context, queueSID, day string) error {
	return nil
}

func (m *mockStatsRepository) IncrementNoShow(ctx context.Context, queueSID, day string) error {
	return nil
}

func (m *mockStatsRepository) GetByQueueAndDay(ctx context.Context, queueSID, day string) (*reporting.DailyStats, error) {
	if m.GetByQueueAndDayFunc != nil {
		return m.GetByQueueAndDayFunc(ctx, queueSID, day)
	}
	return nil, nil
}

func (m *mockStatsRepository) ListByDay(ctx context.Context, day string) ([]*reporting.DailyStats, error) {
	if m.ListByDayFunc != nil {
		return m.ListByDayFunc(ctx, day)
	}
	return nil, nil
}

type mockQueueRepository struct {
	GetBySIDFunc func(ctx context.Context, sid string) (*queue.Queue, error)
}

func (m *mockQueueRepository) Save(ctx context.Context, q *queue.Queue) error   { return nil }
func (m *mockQueueRepository) Update(ctx context.Context, q *queue.Queue) error { return nil }

func (m *mockQueueRepository) GetByID(ctx context.Context, queueID uint) (*queue.Queue, error) {
	return nil, nil
}

func (m *mockQueueRepository) GetBySID(ctx context.Context, sid string) (*queue.Queue, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockQueueRepository) GetByServiceAndDay(ctx context.Context, serviceID uint, operatingDay time.Time) (*queue.Queue, error) {
	return nil, nil
}

func (m *mockQueueRepository) List(ctx context.Context, filters queue.QueueFilter) ([]*queue.Queue, int64, error) {
	return nil, 0, nil
}

func (m *mockQueueRepository) ListOpenBefore(ctx context.Context, operatingDay time.Time) ([]*queue.Queue, error) {
	return nil, nil
}

func quietLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/domain/reporting"
	"lineup/internal/domain/ticket"
	"lineup/internal/shared/logger"
)

type mockStatsRepository struct {
	IncrementIssuedFunc    func(ctx context.Context, queueSID, day string) error
	RecordCompletionFunc   func(ctx context.Context, queueSID, day string, dwellSeconds, serviceSeconds float64) error
	IncrementCancelledFunc func(ctx context.Context, queueSID, day string) error
	IncrementNoShowFunc    func(ctx context.Context, queueSID, day string) error
}

func (m *mockStatsRepository) IncrementIssued(ctx context.Context, queueSID, day string) error {
	if m.IncrementIssuedFunc != nil {
		return m.IncrementIssuedFunc(ctx, queueSID, day)
	}
	return nil
}

func (m *mockStatsRepository) RecordCompletion(ctx context.Context, queueSID, day string, dwellSeconds, serviceSeconds float64) error {
	if m.RecordCompletionFunc != nil {
		return m.RecordCompletionFunc(ctx, queueSID, day, dwellSeconds, serviceSeconds)
	}
	return nil
}

func (m *mockStatsRepository) IncrementCancelled(ctx context.Context, queueSID, day string) error {
	if m.IncrementCancelledFunc != nil {
		return m.IncrementCancelledFunc(ctx, queueSID, day)
	}
	return nil
}

func (m *mockStatsRepository) IncrementNoShow(ctx context.Context, queueSID, day string) error {
	if m.IncrementNoShowFunc != nil {
		return m.IncrementNoShowFunc(ctx, queueSID, day)
	}
	return nil
}

func (m *mockStatsRepository) GetByQueueAndDay(ctx context.Context, queueSID, day string) (*reporting.DailyStats, error) {
	return nil, nil
}

func (m *mockStatsRepository) ListByDay(ctx context.Context, day string) ([]*reporting.DailyStats, error) {
	return nil, nil
}

func quietLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStatsCollector_Handle_TicketCreated(t *testing.T) {
	var gotQueue, gotDay string
	repo := &mockStatsRepository{
		IncrementIssuedFunc: func(ctx context.Context, queueSID, day string) error {
			gotQueue = queueSID
			gotDay = day
			return nil
		},
	}
	collector := NewStatsCollector(repo, quietLogger())

	createdAt := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	evt := ticket.NewTicketCreatedEvent("tkt-1", "que-1", 1, "A-001", "Jane", 1, 1, createdAt)

	require.NoError(t, collector.Handle(evt))
	assert.Equal(t, "que-1", gotQueue)
	assert.Equal(t, "2025-03-10", gotDay)
}

func TestStatsCollector_Handle_TicketCompleted(t *testing.T) {
	var gotDwell, gotService float64
	var gotDay string
	repo := &mockStatsRepository{
		RecordCompletionFunc: func(ctx context.Context, queueSID, day string, dwellSeconds, serviceSeconds float64) error {
			gotDay = day
			gotDwell = dwellSeconds
			gotService = serviceSeconds
			return nil
		},
	}
	collector := NewStatsCollector(repo, quietLogger())

	issuedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	calledAt := issuedAt.Add(20 * time.Minute)
	completedAt := calledAt.Add(5 * time.Minute)
	evt := ticket.NewTicketCompletedEvent("tkt-1", "que-1", 1, issuedAt, calledAt, completedAt)

	require.NoError(t, collector.Handle(evt))
	assert.Equal(t, "2025-03-10", gotDay)
	assert.Equal(t, float64(25*60), gotDwell)
	assert.Equal(t, float64(5*60), gotService)
}

func TestStatsCollector_Handle_StateChanges(t *testing.T) {
	cancelled := 0
	noShows := 0
	repo := &mockStatsRepository{
		IncrementCancelledFunc: func(ctx context.Context, queueSID, day string) error {
			cancelled++
			return nil
		},
		IncrementNoShowFunc: func(ctx context.Context, queueSID, day string) error {
			noShows++
			return nil
		},
	}
	collector := NewStatsCollector(repo, quietLogger())

	require.NoError(t, collector.Handle(ticket.NewTicketStateChangedEvent("tkt-1", "que-1", 1, "waiting", "cancelled")))
	require.NoError(t, collector.Handle(ticket.NewTicketStateChangedEvent("tkt-2", "que-1", 2, "called", "no_show")))
	// Intermediate transitions are not counted.
	require.NoError(t, collector.Handle(ticket.NewTicketStateChangedEvent("tkt-3", "que-1", 3, "waiting", "called")))
	require.NoError(t, collector.Handle(ticket.NewTicketStateChangedEvent("tkt-3", "que-1", 3, "called", "serving")))

	assert.Equal(t, 1, cancelled)
	assert.Equal(t, 1, noShows)
}

func TestStatsCollector_CanHandle(t *testing.T) {
	collector := NewStatsCollector(&mockStatsRepository{}, quietLogger())

	assert.True(t, collector.CanHandle(ticket.EventTypeTicketCreated))
	assert.True(t, collector.CanHandle(ticket.EventTypeTicketCompleted))
	assert.True(t, collector.CanHandle(ticket.EventTypeTicketStateChanged))
	assert.False(t, collector.CanHandle(ticket.EventTypeTicketCalled))
	assert.False(t, collector.CanHandle("queue.created"))
}

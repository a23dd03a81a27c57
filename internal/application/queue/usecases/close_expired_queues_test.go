package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/domain/queue"
	qvo "lineup/internal/domain/queue/valueobjects"
	"lineup/internal/domain/shared/events"
	"lineup/internal/shared/lock"
)

func staleQueue(t *testing.T, id uint, sid string) *queue.Queue {
	t.Helper()
	q, err := queue.ReconstructQueue(
		id, sid, 1, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		qvo.StatusActive, 12, nil, "", nil, 3,
		time.Now().Add(-26*time.Hour), time.Now().Add(-25*time.Hour),
	)
	if err != nil {
		t.Fatalf("failed to build queue fixture: %v", err)
	}
	return q
}

func TestCloseExpiredQueuesUseCase_Execute_ClosesStaleQueues(t *testing.T) {
	first := staleQueue(t, 1, "que-stale1")
	second := staleQueue(t, 2, "que-stale2")
	bySID := map[string]*queue.Queue{first.SID(): first, second.SID(): second}
	var published []events.DomainEvent

	mockQueueRepo := &mockQueueRepository{
		ListOpenBeforeFunc: func(ctx context.Context, operatingDay time.Time) ([]*queue.Queue, error) {
			return []*queue.Queue{first, second}, nil
		},
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return bySID[sid], nil
		},
	}
	mockPublisher := &mockEventPublisher{
		PublishAllFunc: func(evts []events.DomainEvent) error {
			published = append(published, evts...)
			return nil
		},
	}

	useCase := NewCloseExpiredQueuesUseCase(mockQueueRepo, lock.NewKeyedMutex(), mockPublisher, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CloseExpiredQueuesCommand{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Closed)
	assert.Equal(t, 0, result.Failed)
	assert.True(t, first.IsClosed())
	assert.True(t, second.IsClosed())
	assert.Len(t, published, 2)
}

func TestCloseExpiredQueuesUseCase_Execute_SkipsAlreadyClosed(t *testing.T) {
	closedAt := time.Now().Add(-time.Hour)
	alreadyClosed, err := queue.ReconstructQueue(
		3, "que-done", 1, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		qvo.StatusClosed, 9, nil, "", &closedAt, 4,
		time.Now().Add(-26*time.Hour), closedAt,
	)
	require.NoError(t, err)
	publishCalled := false

	mockQueueRepo := &mockQueueRepository{
		ListOpenBeforeFunc: func(ctx context.Context, operatingDay time.Time) ([]*queue.Queue, error) {
			return []*queue.Queue{alreadyClosed}, nil
		},
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return alreadyClosed, nil
		},
	}
	mockPublisher := &mockEventPublisher{
		PublishAllFunc: func(evts []events.DomainEvent) error {
			publishCalled = true
			return nil
		},
	}

	useCase := NewCloseExpiredQueuesUseCase(mockQueueRepo, lock.NewKeyedMutex(), mockPublisher, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CloseExpiredQueuesCommand{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Closed)
	assert.Equal(t, 0, result.Failed)
	assert.False(t, publishCalled)
	assert.Equal(t, closedAt, *alreadyClosed.ClosedAt(), "close timestamp must not move")
}

func TestCloseExpiredQueuesUseCase_Execute_KeepsGoingAfterFailure(t *testing.T) {
	first := staleQueue(t, 1, "que-stale1")
	second := staleQueue(t, 2, "que-stale2")
	bySID := map[string]*queue.Queue{first.SID(): first, second.SID(): second}

	mockQueueRepo := &mockQueueRepository{
		ListOpenBeforeFunc: func(ctx context.Context, operatingDay time.Time) ([]*queue.Queue, error) {
			return []*queue.Queue{first, second}, nil
		},
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return bySID[sid], nil
		},
		UpdateFunc: func(ctx context.Context, q *queue.Queue) error {
			if q.SID() == first.SID() {
				return errors.New("deadlock found when trying to get lock")
			}
			return nil
		},
	}

	useCase := NewCloseExpiredQueuesUseCase(mockQueueRepo, lock.NewKeyedMutex(), &mockEventPublisher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CloseExpiredQueuesCommand{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Closed)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, second.IsClosed())
}

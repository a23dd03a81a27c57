package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/domain/queue"
	qvo "lineup/internal/domain/queue/valueobjects"
	"lineup/internal/domain/shared/events"
	"lineup/internal/shared/lock"
)

func TestCloseQueueUseCase_Execute_Success(t *testing.T) {
	q := testQueue(t, qvo.StatusActive)
	updates := 0
	var published []events.DomainEvent

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
		UpdateFunc: func(ctx context.Context, updatedQueue *queue.Queue) error {
			updates++
			return nil
		},
	}
	mockPublisher := &mockEventPublisher{
		PublishAllFunc: func(evts []events.DomainEvent) error {
			published = append(published, evts...)
			return nil
		},
	}

	useCase := NewCloseQueueUseCase(mockQueueRepo, lock.NewKeyedMutex(), mockPublisher, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CloseQueueCommand{QueueSID: q.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "closed", result.Status)
	require.NotNil(t, result.ClosedAt)
	assert.Equal(t, 1, updates)
	require.Len(t, published, 1)
	assert.Equal(t, queue.EventTypeQueueClosed, published[0].GetEventType())
}

func TestCloseQueueUseCase_Execute_CloseTwiceIsIdempotent(t *testing.T) {
	q := testQueue(t, qvo.StatusActive)
	updates := 0
	publishes := 0

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
		UpdateFunc: func(ctx context.Context, updatedQueue *queue.Queue) error {
			updates++
			return nil
		},
	}
	mockPublisher := &mockEventPublisher{
		PublishAllFunc: func(evts []events.DomainEvent) error {
			publishes++
			return nil
		},
	}

	useCase := NewCloseQueueUseCase(mockQueueRepo, lock.NewKeyedMutex(), mockPublisher, &mockLogger{})

	first, err := useCase.Execute(context.Background(), CloseQueueCommand{QueueSID: q.SID()})
	require.NoError(t, err)
	firstClosedAt := *first.ClosedAt

	second, err := useCase.Execute(context.Background(), CloseQueueCommand{QueueSID: q.SID()})
	require.NoError(t, err)
	require.NotNil(t, second.ClosedAt)

	assert.Equal(t, "closed", second.Status)
	assert.Equal(t, firstClosedAt, *second.ClosedAt, "second close must not move the close timestamp")
	assert.Equal(t, 1, updates, "second close must not write")
	assert.Equal(t, 1, publishes, "second close must not publish")
}

func TestCloseQueueUseCase_Execute_ClosePaused(t *testing.T) {
	q := testQueue(t, qvo.StatusPaused)

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
	}

	useCase := NewCloseQueueUseCase(mockQueueRepo, lock.NewKeyedMutex(), &mockEventPublisher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CloseQueueCommand{QueueSID: q.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "closed", result.Status)
}

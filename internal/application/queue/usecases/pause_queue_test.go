package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/domain/queue"
	qvo "lineup/internal/domain/queue/valueobjects"
	"lineup/internal/domain/shared/events"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/lock"
)

func newPauseQueueUseCase(queueRepo *mockQueueRepository, publisher *mockEventPublisher) *PauseQueueUseCase {
	return NewPauseQueueUseCase(queueRepo, lock.NewKeyedMutex(), publisher, &mockLogger{})
}

func TestPauseQueueUseCase_Execute_Success(t *testing.T) {
	q := testQueue(t, qvo.StatusActive)
	updated := false
	var published []events.DomainEvent

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
		UpdateFunc: func(ctx context.Context, updatedQueue *queue.Queue) error {
			updated = true
			return nil
		},
	}
	mockPublisher := &mockEventPublisher{
		PublishAllFunc: func(evts []events.DomainEvent) error {
			published = append(published, evts...)
			return nil
		},
	}

	useCase := newPauseQueueUseCase(mockQueueRepo, mockPublisher)
	result, err := useCase.Execute(context.Background(), PauseQueueCommand{QueueSID: q.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "paused", result.Status)
	assert.True(t, updated)
	require.Len(t, published, 1)
	assert.Equal(t, queue.EventTypeQueuePaused, published[0].GetEventType())
}

func TestPauseQueueUseCase_Execute_AlreadyPaused(t *testing.T) {
	q := testQueue(t, qvo.StatusPaused)
	updated := false
	publishCalled := false

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
		UpdateFunc: func(ctx context.Context, updatedQueue *queue.Queue) error {
			updated = true
			return nil
		},
	}
	mockPublisher := &mockEventPublisher{
		PublishAllFunc: func(evts []events.DomainEvent) error {
			publishCalled = true
			return nil
		},
	}

	useCase := newPauseQueueUseCase(mockQueueRepo, mockPublisher)
	result, err := useCase.Execute(context.Background(), PauseQueueCommand{QueueSID: q.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "paused", result.Status)
	assert.False(t, updated)
	assert.False(t, publishCalled)
}

func TestPauseQueueUseCase_Execute_ClosedQueue(t *testing.T) {
	q := testQueue(t, qvo.StatusClosed)

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
	}

	useCase := newPauseQueueUseCase(mockQueueRepo, &mockEventPublisher{})
	result, err := useCase.Execute(context.Background(), PauseQueueCommand{QueueSID: q.SID()})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidStateError(err))
}

func TestPauseQueueUseCase_Execute_NotFound(t *testing.T) {
	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return nil, nil
		},
	}

	useCase := newPauseQueueUseCase(mockQueueRepo, &mockEventPublisher{})
	result, err := useCase.Execute(context.Background(), PauseQueueCommand{QueueSID: "que-missing"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

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

func newResumeQueueUseCase(queueRepo *mockQueueRepository, publisher *mockEventPublisher) *ResumeQueueUseCase {
	return NewResumeQueueUseCase(queueRepo, lock.NewKeyedMutex(), publisher, &mockLogger{})
}

func TestResumeQueueUseCase_Execute_Success(t *testing.T) {
	q := testQueue(t, qvo.StatusPaused)
	var published []events.DomainEvent

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
	}
	mockPublisher := &mockEventPublisher{
		PublishAllFunc: func(evts []events.DomainEvent) error {
			published = append(published, evts...)
			return nil
		},
	}

	useCase := newResumeQueueUseCase(mockQueueRepo, mockPublisher)
	result, err := useCase.Execute(context.Background(), ResumeQueueCommand{QueueSID: q.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "active", result.Status)
	require.Len(t, published, 1)
	assert.Equal(t, queue.EventTypeQueueResumed, published[0].GetEventType())
}

func TestResumeQueueUseCase_Execute_AlreadyActive(t *testing.T) {
	q := testQueue(t, qvo.StatusActive)
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

	useCase := newResumeQueueUseCase(mockQueueRepo, mockPublisher)
	result, err := useCase.Execute(context.Background(), ResumeQueueCommand{QueueSID: q.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "active", result.Status)
	assert.False(t, updated)
	assert.False(t, publishCalled)
}

func TestResumeQueueUseCase_Execute_ClosedQueue(t *testing.T) {
	q := testQueue(t, qvo.StatusClosed)

	mockQueueRepo := &mockQueueRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*queue.Queue, error) {
			return q, nil
		},
	}

	useCase := newResumeQueueUseCase(mockQueueRepo, &mockEventPublisher{})
	result, err := useCase.Execute(context.Background(), ResumeQueueCommand{QueueSID: q.SID()})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidStateError(err))
	assert.True(t, q.IsClosed(), "closed is terminal")
}

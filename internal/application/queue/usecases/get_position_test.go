package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/domain/ticket"
	apperrors "lineup/internal/shared/errors"
)

func TestGetPositionUseCase_Execute_WaitingRank(t *testing.T) {
	waiting := testWaitingTicket(t, 10, 7)

	mockTicketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return waiting, nil
		},
		CountWaitingBeforeFunc: func(ctx context.Context, queueID uint, number int) (int64, error) {
			assert.Equal(t, 7, number)
			return 2, nil
		},
	}

	useCase := NewGetPositionUseCase(mockTicketRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetPositionCommand{TicketSID: waiting.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.Position, "two waiting ahead puts the ticket third")
	assert.Equal(t, "waiting", result.Status)
}

func TestGetPositionUseCase_Execute_CalledIsZero(t *testing.T) {
	called := testCalledTicket(t, 42, 5)
	countCalled := false

	mockTicketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return called, nil
		},
		CountWaitingBeforeFunc: func(ctx context.Context, queueID uint, number int) (int64, error) {
			countCalled = true
			return 0, nil
		},
	}

	useCase := NewGetPositionUseCase(mockTicketRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetPositionCommand{TicketSID: called.SID()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Position)
	assert.False(t, countCalled, "called tickets are position 0 without counting")
}

func TestGetPositionUseCase_Execute_TerminalNotFound(t *testing.T) {
	serving := testServingTicket(t, 42, 5)
	require.NoError(t, serving.Complete())

	mockTicketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return serving, nil
		},
	}

	useCase := NewGetPositionUseCase(mockTicketRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetPositionCommand{TicketSID: serving.SID()})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetPositionUseCase_Execute_UnknownTicket(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*ticket.Ticket, error) {
			return nil, nil
		},
	}

	useCase := NewGetPositionUseCase(mockTicketRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetPositionCommand{TicketSID: "tkt-missing"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

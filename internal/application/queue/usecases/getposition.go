package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/ticket"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type GetPositionCommand struct {
	TicketSID string
}

type GetPositionResult struct {
	TicketSID string
	Number    int
	Status    string
	// Position is 0 while the ticket is called or serving.
	Position int
}

type GetPositionUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetPositionUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetPositionUseCase {
	return &GetPositionUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns the ticket's live position. Terminal tickets have no
// position and report not found.
func (uc *GetPositionUseCase) Execute(ctx context.Context, cmd GetPositionCommand) (*GetPositionResult, error) {
	tk, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if tk == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	if tk.IsTerminal() {
		return nil, apperrors.NewNotFoundError("ticket is no longer in the queue")
	}

	position := 0
	if !tk.Status().HoldsServingSlot() {
		position, err = waitingPosition(ctx, uc.ticketRepo, tk)
		if err != nil {
			uc.logger.Errorw("failed to compute position", "error", err, "ticket_sid", cmd.TicketSID)
			return nil, err
		}
	}

	return &GetPositionResult{
		TicketSID: tk.SID(),
		Number:    tk.Number(),
		Status:    tk.Status().String(),
		Position:  position,
	}, nil
}

package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/counter"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type DeactivateCounterCommand struct {
	CounterSID string
}

type DeactivateCounterResult struct {
	CounterSID string
	Active     bool
}

// DeactivateCounterUseCase takes a counter out of service. Tickets
// already called to it keep their assignment until resolved.
type DeactivateCounterUseCase struct {
	counterRepo counter.CounterRepository
	logger      logger.Interface
}

func NewDeactivateCounterUseCase(
	counterRepo counter.CounterRepository,
	logger logger.Interface,
) *DeactivateCounterUseCase {
	return &DeactivateCounterUseCase{
		counterRepo: counterRepo,
		logger:      logger,
	}
}

func (uc *DeactivateCounterUseCase) Execute(ctx context.Context, cmd DeactivateCounterCommand) (*DeactivateCounterResult, error) {
	ctr, err := uc.counterRepo.GetBySID(ctx, cmd.CounterSID)
	if err != nil {
		uc.logger.Errorw("failed to load counter", "error", err, "counter_sid", cmd.CounterSID)
		return nil, fmt.Errorf("failed to load counter: %w", err)
	}
	if ctr == nil {
		return nil, apperrors.NewNotFoundError("counter not found")
	}

	ctr.Deactivate()

	if err := uc.counterRepo.Update(ctx, ctr); err != nil {
		uc.logger.Errorw("failed to update counter", "error", err, "counter_sid", ctr.SID())
		return nil, fmt.Errorf("failed to update counter: %w", err)
	}

	uc.logger.Infow("counter deactivated", "counter_sid", ctr.SID())

	return &DeactivateCounterResult{
		CounterSID: ctr.SID(),
		Active:     ctr.IsActive(),
	}, nil
}

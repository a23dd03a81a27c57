package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/counter"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/id"
	"lineup/internal/shared/logger"
)

type CreateCounterCommand struct {
	Name string
}

type CreateCounterResult struct {
	CounterSID string
	Name       string
	Active     bool
	CreatedAt  time.Time
}

type CreateCounterUseCase struct {
	counterRepo counter.CounterRepository
	logger      logger.Interface
}

func NewCreateCounterUseCase(
	counterRepo counter.CounterRepository,
	logger logger.Interface,
) *CreateCounterUseCase {
	return &CreateCounterUseCase{
		counterRepo: counterRepo,
		logger:      logger,
	}
}

func (uc *CreateCounterUseCase) Execute(ctx context.Context, cmd CreateCounterCommand) (*CreateCounterResult, error) {
	sid, err := id.NewCounterSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate counter SID: %w", err)
	}

	ctr, err := counter.NewCounter(sid, cmd.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.counterRepo.Save(ctx, ctr); err != nil {
		uc.logger.Errorw("failed to persist counter", "error", err, "counter_sid", sid)
		return nil, fmt.Errorf("failed to save counter: %w", err)
	}

	uc.logger.Infow("counter created",
		"counter_sid", ctr.SID(),
		"name", ctr.Name(),
	)

	return &CreateCounterResult{
		CounterSID: ctr.SID(),
		Name:       ctr.Name(),
		Active:     ctr.IsActive(),
		CreatedAt:  ctr.CreatedAt(),
	}, nil
}

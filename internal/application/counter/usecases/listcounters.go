package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/counter"
	"lineup/internal/shared/logger"
)

type ListCountersCommand struct {
	ActiveOnly bool
}

type CounterSummary struct {
	CounterSID string
	Name       string
	Active     bool
	CreatedAt  time.Time
}

type ListCountersResult struct {
	Counters []CounterSummary
}

type ListCountersUseCase struct {
	counterRepo counter.CounterRepository
	logger      logger.Interface
}

func NewListCountersUseCase(
	counterRepo counter.CounterRepository,
	logger logger.Interface,
) *ListCountersUseCase {
	return &ListCountersUseCase{
		counterRepo: counterRepo,
		logger:      logger,
	}
}

func (uc *ListCountersUseCase) Execute(ctx context.Context, cmd ListCountersCommand) (*ListCountersResult, error) {
	counters, err := uc.counterRepo.List(ctx, cmd.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list counters", "error", err)
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}

	summaries := make([]CounterSummary, 0, len(counters))
	for _, ctr := range counters {
		summaries = append(summaries, CounterSummary{
			CounterSID: ctr.SID(),
			Name:       ctr.Name(),
			Active:     ctr.IsActive(),
			CreatedAt:  ctr.CreatedAt(),
		})
	}

	return &ListCountersResult{Counters: summaries}, nil
}

package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/reporting"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type GetDailyReportCommand struct {
	// Day is YYYY-MM-DD; empty means the current business day.
	Day string
}

type DailyReportResult struct {
	Day    string
	Queues []QueueReport
	Totals QueueReport
}

type GetDailyReportUseCase struct {
	statsRepo reporting.StatsRepository
	logger    logger.Interface
}

func NewGetDailyReportUseCase(statsRepo reporting.StatsRepository, logger logger.Interface) *GetDailyReportUseCase {
	return &GetDailyReportUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Execute rolls the day's per-queue aggregates into one report. The
// Totals row sums counts across queues; its averages are weighted by
// completion counts, not averaged per queue.
func (uc *GetDailyReportUseCase) Execute(ctx context.Context, cmd GetDailyReportCommand) (*DailyReportResult, error) {
	day, err := resolveDay(cmd.Day)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	stats, err := uc.statsRepo.ListByDay(ctx, day)
	if err != nil {
		uc.logger.Errorw("failed to list daily stats", "error", err, "day", day)
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}

	result := &DailyReportResult{
		Day:    day,
		Queues: make([]QueueReport, 0, len(stats)),
		Totals: QueueReport{Day: day},
	}

	var dwellTotal, serviceTotal float64
	for _, s := range stats {
		result.Queues = append(result.Queues, *reportFromStats(s))

		result.Totals.Issued += s.Issued
		result.Totals.Completed += s.Completed
		result.Totals.Cancelled += s.Cancelled
		result.Totals.NoShows += s.NoShows
		dwellTotal += s.DwellSecondsTotal
		serviceTotal += s.ServiceSecondsTotal
		if s.MaxDwellSeconds > result.Totals.MaxDwellSeconds {
			result.Totals.MaxDwellSeconds = s.MaxDwellSeconds
		}
		if s.MaxServiceSeconds > result.Totals.MaxServiceSeconds {
			result.Totals.MaxServiceSeconds = s.MaxServiceSeconds
		}
	}
	if result.Totals.Completed > 0 {
		result.Totals.AvgDwellSeconds = dwellTotal / float64(result.Totals.Completed)
		result.Totals.AvgServiceSeconds = serviceTotal / float64(result.Totals.Completed)
	}

	return result, nil
}

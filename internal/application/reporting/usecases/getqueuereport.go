package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/reporting"
	"lineup/internal/shared/biztime"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type GetQueueReportCommand struct {
	QueueSID string
	// Day is YYYY-MM-DD; empty means the current business day.
	Day string
}

type QueueReport struct {
	QueueSID          string
	Day               string
	Issued            int64
	Completed         int64
	Cancelled         int64
	NoShows           int64
	AvgDwellSeconds   float64
	AvgServiceSeconds float64
	MaxDwellSeconds   float64
	MaxServiceSeconds float64
}

type GetQueueReportUseCase struct {
	queueRepo queue.QueueRepository
	statsRepo reporting.StatsRepository
	logger    logger.Interface
}

func NewGetQueueReportUseCase(
	queueRepo queue.QueueRepository,
	statsRepo reporting.StatsRepository,
	logger logger.Interface,
) *GetQueueReportUseCase {
	return &GetQueueReportUseCase{
		queueRepo: queueRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Execute returns the day's aggregates for one queue. A queue with no
// recorded events yet reports zeros, not an error.
func (uc *GetQueueReportUseCase) Execute(ctx context.Context, cmd GetQueueReportCommand) (*QueueReport, error) {
	q, err := uc.queueRepo.GetBySID(ctx, cmd.QueueSID)
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	day, err := resolveDay(cmd.Day)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	stats, err := uc.statsRepo.GetByQueueAndDay(ctx, cmd.QueueSID, day)
	if err != nil {
		uc.logger.Errorw("failed to get queue stats", "error", err, "queue_sid", cmd.QueueSID, "day", day)
		return nil, fmt.Errorf("failed to get queue stats: %w", err)
	}
	if stats == nil {
		return &QueueReport{QueueSID: cmd.QueueSID, Day: day}, nil
	}

	return reportFromStats(stats), nil
}

func resolveDay(day string) (string, error) {
	if day == "" {
		return biztime.FormatDay(biztime.OperatingDay(biztime.NowUTC())), nil
	}
	parsed, err := biztime.ParseDateInBizTimezone(day)
	if err != nil {
		return "", fmt.Errorf("invalid day %q, expected YYYY-MM-DD", day)
	}
	return biztime.FormatDay(parsed), nil
}

func reportFromStats(stats *reporting.DailyStats) *QueueReport {
	return &QueueReport{
		QueueSID:          stats.QueueSID,
		Day:               stats.Day,
		Issued:            stats.Issued,
		Completed:         stats.Completed,
		Cancelled:         stats.Cancelled,
		NoShows:           stats.NoShows,
		AvgDwellSeconds:   stats.AvgDwellSeconds(),
		AvgServiceSeconds: stats.AvgServiceSeconds(),
		MaxDwellSeconds:   stats.MaxDwellSeconds,
		MaxServiceSeconds: stats.MaxServiceSeconds,
	}
}

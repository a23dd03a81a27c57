package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lineup/internal/domain/reporting"
	"lineup/internal/infrastructure/persistence/mappers"
	"lineup/internal/infrastructure/persistence/models"
	"lineup/internal/shared/logger"
)

var statsConflictColumns = []clause.Column{
	{Name: "queue_sid"},
	{Name: "day"},
}

// DailyStatsRepositoryImpl folds ticket events into per-queue daily
// rows. Every increment is a single upsert on (queue_sid, day), so
// collectors on different instances never lose counts to each other.
type DailyStatsRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DailyStatsMapper
	logger logger.Interface
}

func NewDailyStatsRepository(db *gorm.DB, logger logger.Interface) reporting.StatsRepository {
	return &DailyStatsRepositoryImpl{
		db:     db,
		mapper: mappers.NewDailyStatsMapper(),
		logger: logger,
	}
}

func (r *DailyStatsRepositoryImpl) IncrementIssued(ctx context.Context, queueSID, day string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: statsConflictColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"issued": gorm.Expr("issued + 1"),
		}),
	}).Create(&models.QueueDailyStatsModel{
		QueueSID: queueSID,
		Day:      day,
		Issued:   1,
	}).Error
	if err != nil {
		r.logger.Errorw("failed to increment issued count", "queue_sid", queueSID, "day", day, "error", err)
		return fmt.Errorf("failed to increment issued count: %w", err)
	}

	return nil
}

func (r *DailyStatsRepositoryImpl) RecordCompletion(ctx context.Context, queueSID, day string, dwellSeconds, serviceSeconds float64) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: statsConflictColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":             gorm.Expr("completed + 1"),
			"dwell_seconds_total":   gorm.Expr("dwell_seconds_total + ?", dwellSeconds),
			"service_seconds_total": gorm.Expr("service_seconds_total + ?", serviceSeconds),
			// CASE keeps this portable; GREATEST is missing on older sqlite.
			"max_dwell_seconds":   gorm.Expr("CASE WHEN max_dwell_seconds >= ? THEN max_dwell_seconds ELSE ? END", dwellSeconds, dwellSeconds),
			"max_service_seconds": gorm.Expr("CASE WHEN max_service_seconds >= ? THEN max_service_seconds ELSE ? END", serviceSeconds, serviceSeconds),
		}),
	}).Create(&models.QueueDailyStatsModel{
		QueueSID:            queueSID,
		Day:                 day,
		Completed:           1,
		DwellSecondsTotal:   dwellSeconds,
		ServiceSecondsTotal: serviceSeconds,
		MaxDwellSeconds:     dwellSeconds,
		MaxServiceSeconds:   serviceSeconds,
	}).Error
	if err != nil {
		r.logger.Errorw("failed to record completion", "queue_sid", queueSID, "day", day, "error", err)
		return fmt.Errorf("failed to record completion: %w", err)
	}

	return nil
}

func (r *DailyStatsRepositoryImpl) IncrementCancelled(ctx context.Context, queueSID, day string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: statsConflictColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"cancelled": gorm.Expr("cancelled + 1"),
		}),
	}).Create(&models.QueueDailyStatsModel{
		QueueSID:  queueSID,
		Day:       day,
		Cancelled: 1,
	}).Error
	if err != nil {
		r.logger.Errorw("failed to increment cancelled count", "queue_sid", queueSID, "day", day, "error", err)
		return fmt.Errorf("failed to increment cancelled count: %w", err)
	}

	return nil
}

func (r *DailyStatsRepositoryImpl) IncrementNoShow(ctx context.Context, queueSID, day string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: statsConflictColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"no_shows": gorm.Expr("no_shows + 1"),
		}),
	}).Create(&models.QueueDailyStatsModel{
		QueueSID: queueSID,
		Day:      day,
		NoShows:  1,
	}).Error
	if err != nil {
		r.logger.Errorw("failed to increment no-show count", "queue_sid", queueSID, "day", day, "error", err)
		return fmt.Errorf("failed to increment no-show count: %w", err)
	}

	return nil
}

func (r *DailyStatsRepositoryImpl) GetByQueueAndDay(ctx context.Context, queueSID, day string) (*reporting.DailyStats, error) {
	var model models.QueueDailyStatsModel

	if err := r.db.WithContext(ctx).
		Where("queue_sid = ? AND day = ?", queueSID, day).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *DailyStatsRepositoryImpl) ListByDay(ctx context.Context, day string) ([]*reporting.DailyStats, error) {
	var statModels []models.QueueDailyStatsModel

	if err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("queue_sid ASC").
		Find(&statModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}

	stats := make([]*reporting.DailyStats, len(statModels))
	for i, model := range statModels {
		stats[i] = r.mapper.ToDomain(&model)
	}

	return stats, nil
}

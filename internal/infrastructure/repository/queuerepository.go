package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"lineup/internal/domain/queue"
	qvo "lineup/internal/domain/queue/valueobjects"
	"lineup/internal/infrastructure/persistence/mappers"
	"lineup/internal/infrastructure/persistence/models"
	"lineup/internal/shared/db"
)

// allowedQueueOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedQueueOrderByFields = map[string]bool{
	"id":            true,
	"service_id":    true,
	"operating_day": true,
	"status":        true,
	"created_at":    true,
	"updated_at":    true,
}

type QueueRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.QueueMapper
}

func NewQueueRepository(db *gorm.DB) queue.QueueRepository {
	return &QueueRepositoryImpl{
		db:     db,
		mapper: mappers.NewQueueMapper(),
	}
}

func (r *QueueRepositoryImpl) Save(ctx context.Context, q *queue.Queue) error {
	model := r.mapper.ToModel(q)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}

	if err := q.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update writes the full queue row. NextNumber and CurrentTicketID only
// move under the queue's keyed mutex, so a plain write does not race
// within one instance; the (queue_id, number) unique index on tickets
// backs allocation across instances.
func (r *QueueRepositoryImpl) Update(ctx context.Context, q *queue.Queue) error {
	model := r.mapper.ToModel(q)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero-valued fields through; clearing the serving
	// slot writes NULL instead of being skipped by Updates.
	result := tx.
		Model(&models.QueueModel{}).
		Where("id = ?", model.ID).
		Select("status", "next_number", "current_ticket_id", "announcement", "closed_at", "version", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update queue: %w", result.Error)
	}

	return nil
}

func (r *QueueRepositoryImpl) GetByID(ctx context.Context, queueID uint) (*queue.Queue, error) {
	var model models.QueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, queueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *QueueRepositoryImpl) GetBySID(ctx context.Context, sid string) (*queue.Queue, error) {
	var model models.QueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *QueueRepositoryImpl) GetByServiceAndDay(ctx context.Context, serviceID uint, operatingDay time.Time) (*queue.Queue, error) {
	var model models.QueueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("service_id = ? AND operating_day = ?", serviceID, operatingDay).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get queue by service and day: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *QueueRepositoryImpl) List(
	ctx context.Context,
	filter queue.QueueFilter,
) ([]*queue.Queue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.QueueModel{})

	if filter.ServiceID != nil {
		query = query.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.OperatingDay != nil {
		query = query.Where("operating_day = ?", *filter.OperatingDay)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count queues: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedQueueOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("operating_day DESC, service_id ASC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var queueModels []models.QueueModel
	if err := query.Find(&queueModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list queues: %w", err)
	}

	queues := make([]*queue.Queue, len(queueModels))
	for i, model := range queueModels {
		q, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		queues[i] = q
	}

	return queues, total, nil
}

func (r *QueueRepositoryImpl) ListOpenBefore(ctx context.Context, operatingDay time.Time) ([]*queue.Queue, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var queueModels []models.QueueModel
	if err := tx.
		Where("operating_day < ? AND status <> ?", operatingDay, qvo.StatusClosed.String()).
		Order("operating_day ASC").
		Find(&queueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list open queues: %w", err)
	}

	queues := make([]*queue.Queue, len(queueModels))
	for i, model := range queueModels {
		q, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		queues[i] = q
	}

	return queues, nil
}

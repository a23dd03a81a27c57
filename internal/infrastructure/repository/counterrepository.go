package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lineup/internal/domain/counter"
	"lineup/internal/infrastructure/persistence/mappers"
	"lineup/internal/infrastructure/persistence/models"
	"lineup/internal/shared/db"
)

type CounterRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CounterMapper
}

func NewCounterRepository(db *gorm.DB) counter.CounterRepository {
	return &CounterRepositoryImpl{
		db:     db,
		mapper: mappers.NewCounterMapper(),
	}
}

func (r *CounterRepositoryImpl) Save(ctx context.Context, c *counter.Counter) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save counter: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CounterRepositoryImpl) Update(ctx context.Context, c *counter.Counter) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CounterModel{}).
		Where("id = ?", model.ID).
		Select("name", "active", "version", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update counter: %w", result.Error)
	}

	return nil
}

func (r *CounterRepositoryImpl) Delete(ctx context.Context, counterID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CounterModel{}, counterID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete counter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("counter not found")
	}

	return nil
}

func (r *CounterRepositoryImpl) GetByID(ctx context.Context, counterID uint) (*counter.Counter, error) {
	var model models.CounterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, counterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get counter: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CounterRepositoryImpl) GetBySID(ctx context.Context, sid string) (*counter.Counter, error) {
	var model models.CounterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get counter: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CounterRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*counter.Counter, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var counterModels []models.CounterModel
	if err := query.Find(&counterModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}

	counters := make([]*counter.Counter, len(counterModels))
	for i, model := range counterModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		counters[i] = c
	}

	return counters, nil
}

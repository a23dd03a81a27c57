package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lineup/internal/domain/service"
	"lineup/internal/infrastructure/persistence/mappers"
	"lineup/internal/infrastructure/persistence/models"
	"lineup/internal/shared/db"
)

// allowedServiceOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedServiceOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"code":       true,
	"created_at": true,
	"updated_at": true,
}

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ServiceMapper
}

func NewServiceRepository(db *gorm.DB) service.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		mapper: mappers.NewServiceMapper(),
	}
}

func (r *ServiceRepositoryImpl) Save(ctx context.Context, s *service.Service) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, s *service.Service) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ServiceModel{}).
		Where("id = ?", model.ID).
		Select("name", "code", "description", "avg_handle_seconds", "active", "version", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}

	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, serviceID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ServiceModel{}, serviceID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service not found")
	}

	return nil
}

func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, serviceID uint) (*service.Service, error) {
	var model models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRepositoryImpl) GetBySID(ctx context.Context, sid string) (*service.Service, error) {
	var model models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRepositoryImpl) GetByCode(ctx context.Context, code string) (*service.Service, error) {
	var model models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service by code: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRepositoryImpl) List(
	ctx context.Context,
	filter service.ServiceFilter,
) ([]*service.Service, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ServiceModel{})

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedServiceOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "ASC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("code ASC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var serviceModels []models.ServiceModel
	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]*service.Service, len(serviceModels))
	for i, model := range serviceModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		services[i] = s
	}

	return services, total, nil
}

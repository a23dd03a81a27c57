package mappers

import (
	"lineup/internal/domain/service"
	"lineup/internal/infrastructure/persistence/models"
)

// ServiceMapper handles the conversion between Service domain entities and persistence models.
type ServiceMapper interface {
	ToModel(s *service.Service) *models.ServiceModel
	ToDomain(model *models.ServiceModel) (*service.Service, error)
}

type ServiceMapperImpl struct{}

func NewServiceMapper() ServiceMapper {
	return &ServiceMapperImpl{}
}

func (m *ServiceMapperImpl) ToModel(s *service.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:               s.ID(),
		SID:              s.SID(),
		Name:             s.Name(),
		Code:             s.Code(),
		Description:      s.Description(),
		AvgHandleSeconds: s.AvgHandleSeconds(),
		Active:           s.IsActive(),
		Version:          s.Version(),
		CreatedAt:        s.CreatedAt().UnixMilli(),
		UpdatedAt:        s.UpdatedAt().UnixMilli(),
	}
}

func (m *ServiceMapperImpl) ToDomain(model *models.ServiceModel) (*service.Service, error) {
	return service.ReconstructService(
		model.ID,
		model.SID,
		model.Name,
		model.Code,
		model.Description,
		model.AvgHandleSeconds,
		model.Active,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

package mappers

import (
	"lineup/internal/domain/counter"
	"lineup/internal/infrastructure/persistence/models"
)

// CounterMapper handles the conversion between Counter domain entities and persistence models.
type CounterMapper interface {
	ToModel(c *counter.Counter) *models.CounterModel
	ToDomain(model *models.CounterModel) (*counter.Counter, error)
}

type CounterMapperImpl struct{}

func NewCounterMapper() CounterMapper {
	return &CounterMapperImpl{}
}

func (m *CounterMapperImpl) ToModel(c *counter.Counter) *models.CounterModel {
	return &models.CounterModel{
		ID:        c.ID(),
		SID:       c.SID(),
		Name:      c.Name(),
		Active:    c.IsActive(),
		Version:   c.Version(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *CounterMapperImpl) ToDomain(model *models.CounterModel) (*counter.Counter, error) {
	return counter.ReconstructCounter(
		model.ID,
		model.SID,
		model.Name,
		model.Active,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

package mappers

import (
	"lineup/internal/domain/reporting"
	"lineup/internal/infrastructure/persistence/models"
)

// DailyStatsMapper converts reporting aggregate rows. Stats rows are
// written by atomic upserts, so there is no ToModel direction.
type DailyStatsMapper interface {
	ToDomain(model *models.QueueDailyStatsModel) *reporting.DailyStats
}

type DailyStatsMapperImpl struct{}

func NewDailyStatsMapper() DailyStatsMapper {
	return &DailyStatsMapperImpl{}
}

func (m *DailyStatsMapperImpl) ToDomain(model *models.QueueDailyStatsModel) *reporting.DailyStats {
	return &reporting.DailyStats{
		QueueSID:            model.QueueSID,
		Day:                 model.Day,
		Issued:              model.Issued,
		Completed:           model.Completed,
		Cancelled:           model.Cancelled,
		NoShows:             model.NoShows,
		DwellSecondsTotal:   model.DwellSecondsTotal,
		ServiceSecondsTotal: model.ServiceSecondsTotal,
		MaxDwellSeconds:     model.MaxDwellSeconds,
		MaxServiceSeconds:   model.MaxServiceSeconds,
	}
}

package mappers

import (
	"fmt"

	"lineup/internal/domain/queue"
	vo "lineup/internal/domain/queue/valueobjects"
	"lineup/internal/infrastructure/persistence/models"
)

// QueueMapper handles the conversion between Queue domain entities and persistence models.
type QueueMapper interface {
	// ToModel converts a queue domain entity to a persistence model.
	ToModel(q *queue.Queue) *models.QueueModel

	// ToDomain converts a queue persistence model to a domain entity.
	ToDomain(model *models.QueueModel) (*queue.Queue, error)
}

// QueueMapperImpl is the concrete implementation of QueueMapper.
type QueueMapperImpl struct{}

// NewQueueMapper creates a new QueueMapper.
func NewQueueMapper() QueueMapper {
	return &QueueMapperImpl{}
}

// ToModel converts a queue domain entity to a persistence model.
func (m *QueueMapperImpl) ToModel(q *queue.Queue) *models.QueueModel {
	return &models.QueueModel{
		ID:              q.ID(),
		SID:             q.SID(),
		ServiceID:       q.ServiceID(),
		OperatingDay:    q.OperatingDay(),
		Status:          q.Status().String(),
		NextNumber:      q.NextNumber(),
		CurrentTicketID: q.CurrentTicketID(),
		Announcement:    q.Announcement(),
		ClosedAt:        timeToMillisPtr(q.ClosedAt()),
		Version:         q.Version(),
		CreatedAt:       q.CreatedAt().UnixMilli(),
		UpdatedAt:       q.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a queue persistence model to a domain entity.
func (m *QueueMapperImpl) ToDomain(model *models.QueueModel) (*queue.Queue, error) {
	status, err := vo.NewQueueStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid queue status (id=%d): %w", model.ID, err)
	}

	return queue.ReconstructQueue(
		model.ID,
		model.SID,
		model.ServiceID,
		model.OperatingDay.UTC(),
		status,
		model.NextNumber,
		model.CurrentTicketID,
		model.Announcement,
		millisToTimePtr(model.ClosedAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

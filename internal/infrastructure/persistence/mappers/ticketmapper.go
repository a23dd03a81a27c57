package mappers

import (
	"fmt"

	"lineup/internal/domain/ticket"
	vo "lineup/internal/domain/ticket/valueobjects"
	"lineup/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		SID:          t.SID(),
		QueueID:      t.QueueID(),
		Number:       t.Number(),
		CustomerRef:  t.CustomerRef(),
		CustomerName: t.CustomerName(),
		Status:       t.Status().String(),
		CounterID:    t.CounterID(),
		CalledAt:     timeToMillisPtr(t.CalledAt()),
		ServingAt:    timeToMillisPtr(t.ServingAt()),
		CompletedAt:  timeToMillisPtr(t.CompletedAt()),
		CancelledAt:  timeToMillisPtr(t.CancelledAt()),
		NoShowAt:     timeToMillisPtr(t.NoShowAt()),
		Version:      t.Version(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.SID,
		model.QueueID,
		model.Number,
		model.CustomerRef,
		model.CustomerName,
		status,
		model.CounterID,
		millisToTimePtr(model.CalledAt),
		millisToTimePtr(model.ServingAt),
		millisToTimePtr(model.CompletedAt),
		millisToTimePtr(model.CancelledAt),
		millisToTimePtr(model.NoShowAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/service"
	"lineup/internal/domain/ticket"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketSID string
}

// TicketDetail is the full read model for a single ticket. Position is
// nil for terminal tickets, 0 while called or serving.
type TicketDetail struct {
	TicketSID    string
	QueueSID     string
	Number       int
	Label        string
	Status       string
	CustomerName string
	Position     *int
	CalledAt     *time.Time
	ServingAt    *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
}

type GetTicketUseCase struct {
	queueRepo   queue.QueueRepository
	ticketRepo  ticket.TicketRepository
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		queueRepo:   queueRepo,
		ticketRepo:  ticketRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*TicketDetail, error) {
	tk, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_sid", cmd.TicketSID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if tk == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	return newTicketDetail(ctx, uc.queueRepo, uc.ticketRepo, uc.serviceRepo, tk)
}

// newTicketDetail assembles the ticket read model shared by the get
// and find lookups.
func newTicketDetail(
	ctx context.Context,
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	serviceRepo service.ServiceRepository,
	tk *ticket.Ticket,
) (*TicketDetail, error) {
	q, err := queueRepo.GetByID(ctx, tk.QueueID())
	if err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	svc, err := serviceRepo.GetByID(ctx, q.ServiceID())
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	position, err := ticketPosition(ctx, ticketRepo, tk)
	if err != nil {
		return nil, err
	}

	return &TicketDetail{
		TicketSID:    tk.SID(),
		QueueSID:     q.SID(),
		Number:       tk.Number(),
		Label:        svc.FormatLabel(tk.Number()),
		Status:       tk.Status().String(),
		CustomerName: tk.CustomerName(),
		Position:     position,
		CalledAt:     tk.CalledAt(),
		ServingAt:    tk.ServingAt(),
		CompletedAt:  tk.CompletedAt(),
		CreatedAt:    tk.CreatedAt(),
	}, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/service"
	"lineup/internal/domain/ticket"
	vo "lineup/internal/domain/ticket/valueobjects"
	"lineup/internal/shared/biztime"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type QueueSnapshotCommand struct {
	QueueSID string
}

// CurrentTicketInfo describes the ticket occupying the serving slot.
type CurrentTicketInfo struct {
	TicketSID string
	Number    int
	Label     string
	Status    string
	CalledAt  *time.Time
}

type QueueSnapshotResult struct {
	QueueSID       string
	ServiceSID     string
	ServiceName    string
	OperatingDay   string
	Status         string
	Announcement   string
	WaitingCount   int64
	CalledCount    int64
	ServingCount   int64
	CompletedCount int64
	NoShowCount    int64
	CancelledCount int64
	CurrentTicket  *CurrentTicketInfo
	// EstimatedWaitSeconds is waiting count times the service's average
	// handle time, 0 when the average is unknown.
	EstimatedWaitSeconds int64
	NextNumber           int
	ClosedAt             *time.Time
}

type QueueSnapshotUseCase struct {
	queueRepo   queue.QueueRepository
	ticketRepo  ticket.TicketRepository
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewQueueSnapshotUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *QueueSnapshotUseCase {
	return &QueueSnapshotUseCase{
		queueRepo:   queueRepo,
		ticketRepo:  ticketRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute assembles a point-in-time view of the queue: state counts,
// the ticket at the counter and a rough wait estimate. It does not take
// the queue lock; the snapshot may trail a concurrent mutation.
func (uc *QueueSnapshotUseCase) Execute(ctx context.Context, cmd QueueSnapshotCommand) (*QueueSnapshotResult, error) {
	q, err := uc.queueRepo.GetBySID(ctx, cmd.QueueSID)
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	svc, err := uc.serviceRepo.GetByID(ctx, q.ServiceID())
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	counts := map[vo.TicketStatus]int64{}
	for _, status := range []vo.TicketStatus{
		vo.StatusWaiting,
		vo.StatusCalled,
		vo.StatusServing,
		vo.StatusCompleted,
		vo.StatusNoShow,
		vo.StatusCancelled,
	} {
		n, err := uc.ticketRepo.CountByStatus(ctx, q.ID(), status)
		if err != nil {
			uc.logger.Errorw("failed to count tickets", "error", err, "queue_sid", cmd.QueueSID, "status", status.String())
			return nil, fmt.Errorf("failed to count tickets: %w", err)
		}
		counts[status] = n
	}

	var current *CurrentTicketInfo
	if q.CurrentTicketID() != nil {
		tk, err := uc.ticketRepo.GetByID(ctx, *q.CurrentTicketID())
		if err != nil {
			uc.logger.Errorw("failed to get current ticket", "error", err, "queue_sid", cmd.QueueSID)
			return nil, fmt.Errorf("failed to get current ticket: %w", err)
		}
		if tk != nil {
			current = &CurrentTicketInfo{
				TicketSID: tk.SID(),
				Number:    tk.Number(),
				Label:     svc.FormatLabel(tk.Number()),
				Status:    tk.Status().String(),
				CalledAt:  tk.CalledAt(),
			}
		}
	}

	return &QueueSnapshotResult{
		QueueSID:             q.SID(),
		ServiceSID:           svc.SID(),
		ServiceName:          svc.Name(),
		OperatingDay:         biztime.FormatDay(q.OperatingDay()),
		Status:               q.Status().String(),
		Announcement:         q.Announcement(),
		WaitingCount:         counts[vo.StatusWaiting],
		CalledCount:          counts[vo.StatusCalled],
		ServingCount:         counts[vo.StatusServing],
		CompletedCount:       counts[vo.StatusCompleted],
		NoShowCount:          counts[vo.StatusNoShow],
		CancelledCount:       counts[vo.StatusCancelled],
		CurrentTicket:        current,
		EstimatedWaitSeconds: counts[vo.StatusWaiting] * int64(svc.AvgHandleSeconds()),
		NextNumber:           q.NextNumber(),
		ClosedAt:             q.ClosedAt(),
	}, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/queue"
	qvo "lineup/internal/domain/queue/valueobjects"
	"lineup/internal/domain/service"
	"lineup/internal/shared/biztime"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type ListQueuesCommand struct {
	ServiceSID   string
	Status       string
	OperatingDay *time.Time
	Page         int
	PageSize     int
}

type QueueListItem struct {
	QueueSID     string
	ServiceSID   string
	ServiceName  string
	OperatingDay string
	Status       string
	ClosedAt     *time.Time
	CreatedAt    time.Time
}

type ListQueuesResult struct {
	Queues   []QueueListItem
	Total    int64
	Page     int
	PageSize int
}

type ListQueuesUseCase struct {
	queueRepo   queue.QueueRepository
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewListQueuesUseCase(
	queueRepo queue.QueueRepository,
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *ListQueuesUseCase {
	return &ListQueuesUseCase{
		queueRepo:   queueRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *ListQueuesUseCase) Execute(ctx context.Context, cmd ListQueuesCommand) (*ListQueuesResult, error) {
	filters := queue.QueueFilter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.ServiceSID != "" {
		svc, err := uc.serviceRepo.GetBySID(ctx, cmd.ServiceSID)
		if err != nil {
			uc.logger.Errorw("failed to get service", "error", err, "service_sid", cmd.ServiceSID)
			return nil, fmt.Errorf("failed to get service: %w", err)
		}
		if svc == nil {
			return nil, apperrors.NewNotFoundError("service not found")
		}
		serviceID := svc.ID()
		filters.ServiceID = &serviceID
	}

	if cmd.Status != "" {
		status, err := qvo.NewQueueStatus(cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filters.Status = &status
	}

	if cmd.OperatingDay != nil {
		day := biztime.OperatingDay(*cmd.OperatingDay)
		filters.OperatingDay = &day
	}

	queues, total, err := uc.queueRepo.List(ctx, filters)
	if err != nil {
		uc.logger.Errorw("failed to list queues", "error", err)
		return nil, fmt.Errorf("failed to list queues: %w", err)
	}

	// Service lookups are memoized; queues for one day cluster around
	// few services.
	services := map[uint]*service.Service{}
	items := make([]QueueListItem, 0, len(queues))
	for _, q := range queues {
		svc, ok := services[q.ServiceID()]
		if !ok {
			svc, err = uc.serviceRepo.GetByID(ctx, q.ServiceID())
			if err != nil {
				uc.logger.Errorw("failed to get service", "error", err, "queue_sid", q.SID())
				return nil, fmt.Errorf("failed to get service: %w", err)
			}
			services[q.ServiceID()] = svc
		}

		item := QueueListItem{
			QueueSID:     q.SID(),
			OperatingDay: biztime.FormatDay(q.OperatingDay()),
			Status:       q.Status().String(),
			ClosedAt:     q.ClosedAt(),
			CreatedAt:    q.CreatedAt(),
		}
		if svc != nil {
			item.ServiceSID = svc.SID()
			item.ServiceName = svc.Name()
		}
		items = append(items, item)
	}

	return &ListQueuesResult{
		Queues:   items,
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}, nil
}

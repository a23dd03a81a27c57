package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/service"
	"lineup/internal/domain/shared/events"
	"lineup/internal/shared/biztime"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/id"
	"lineup/internal/shared/logger"
)

type CreateQueueCommand struct {
	ServiceSID string
	// OperatingDay defaults to the current business day when zero.
	OperatingDay time.Time
}

type CreateQueueResult struct {
	QueueSID     string
	ServiceSID   string
	ServiceName  string
	OperatingDay string
	Status       string
	CreatedAt    time.Time
}

type CreateQueueUseCase struct {
	queueRepo   queue.QueueRepository
	serviceRepo service.ServiceRepository
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewCreateQueueUseCase(
	queueRepo queue.QueueRepository,
	serviceRepo service.ServiceRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateQueueUseCase {
	return &CreateQueueUseCase{
		queueRepo:   queueRepo,
		serviceRepo: serviceRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *CreateQueueUseCase) Execute(ctx context.Context, cmd CreateQueueCommand) (*CreateQueueResult, error) {
	svc, err := uc.serviceRepo.GetBySID(ctx, cmd.ServiceSID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_sid", cmd.ServiceSID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}
	if !svc.IsActive() {
		return nil, apperrors.NewValidationError("service is not active")
	}

	day := cmd.OperatingDay
	if day.IsZero() {
		day = biztime.NowUTC()
	}
	day = biztime.OperatingDay(day)

	existing, err := uc.queueRepo.GetByServiceAndDay(ctx, svc.ID(), day)
	if err != nil {
		uc.logger.Errorw("failed to check existing queue", "error", err, "service_sid", cmd.ServiceSID)
		return nil, fmt.Errorf("failed to check existing queue: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("queue already exists for this service today", existing.SID())
	}

	sid, err := id.NewQueueSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate queue SID: %w", err)
	}

	q, err := queue.NewQueue(sid, svc.ID(), day)
	if err != nil {
		uc.logger.Errorw("failed to create queue entity", "error", err)
		return nil, err
	}

	// The unique index on (service_id, operating_day) backs the check
	// above under concurrent creates.
	if err := uc.queueRepo.Save(ctx, q); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("queue already exists for this service today")
		}
		uc.logger.Errorw("failed to persist queue", "error", err, "queue_sid", sid)
		return nil, fmt.Errorf("failed to save queue: %w", err)
	}

	dayStr := biztime.FormatDay(day)
	publishEvents(uc.publisher, uc.logger,
		queue.NewQueueCreatedEvent(q.SID(), svc.SID(), svc.Name(), dayStr, q.CreatedAt()),
	)

	uc.logger.Infow("queue created",
		"queue_sid", q.SID(),
		"service_sid", svc.SID(),
		"operating_day", dayStr,
	)

	return &CreateQueueResult{
		QueueSID:     q.SID(),
		ServiceSID:   svc.SID(),
		ServiceName:  svc.Name(),
		OperatingDay: dayStr,
		Status:       q.Status().String(),
		CreatedAt:    q.CreatedAt(),
	}, nil
}

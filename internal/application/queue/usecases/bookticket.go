package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lineup/internal/domain/queue"
	"lineup/internal/domain/service"
	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	vo "lineup/internal/domain/ticket/valueobjects"
	"lineup/internal/shared/constants"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/id"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

type BookTicketCommand struct {
	QueueSID     string
	CustomerRef  string
	CustomerName string
}

type BookTicketResult struct {
	TicketSID    string
	QueueSID     string
	Number       int
	Label        string
	Status       string
	Position     int
	WaitingCount int
	Token        string
	CreatedAt    time.Time
}

type BookTicketUseCase struct {
	queueRepo   queue.QueueRepository
	ticketRepo  ticket.TicketRepository
	serviceRepo service.ServiceRepository
	txManager   TxManager
	locks       *lock.KeyedMutex
	tokens      TokenIssuer
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewBookTicketUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	serviceRepo service.ServiceRepository,
	txManager TxManager,
	locks *lock.KeyedMutex,
	tokens TokenIssuer,
	publisher events.EventPublisher,
	logger logger.Interface,
) *BookTicketUseCase {
	return &BookTicketUseCase{
		queueRepo:   queueRepo,
		ticketRepo:  ticketRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		locks:       locks,
		tokens:      tokens,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute books a ticket: it allocates the next number in the queue and
// persists both sides atomically, so numbers are unique and strictly
// increasing even under concurrent booking.
func (uc *BookTicketUseCase) Execute(ctx context.Context, cmd BookTicketCommand) (*BookTicketResult, error) {
	customerRef := strings.TrimSpace(cmd.CustomerRef)
	if customerRef == "" {
		return nil, apperrors.NewValidationError("customer reference is required")
	}

	release := uc.locks.Lock(cmd.QueueSID)
	defer release()

	q, err := uc.queueRepo.GetBySID(ctx, cmd.QueueSID)
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	if !q.CanAcceptTickets() {
		return nil, apperrors.NewQueueClosedError(constants.ErrMsgQueueNotAccepting)
	}

	existing, err := uc.ticketRepo.FindActiveByCustomerRef(ctx, q.ID(), customerRef)
	if err != nil {
		uc.logger.Errorw("failed to check existing ticket", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to check existing ticket: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(
			"customer already holds an active ticket in this queue",
			fmt.Sprintf("ticket %s", existing.SID()),
		)
	}

	svc, err := uc.serviceRepo.GetByID(ctx, q.ServiceID())
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	number, err := q.AllocateNumber()
	if err != nil {
		return nil, apperrors.NewQueueClosedError(constants.ErrMsgQueueNotAccepting)
	}

	ticketSID, err := id.NewTicketSID()
	if err != nil {
		uc.logger.Errorw("failed to generate ticket SID", "error", err)
		return nil, fmt.Errorf("failed to generate ticket SID: %w", err)
	}

	tk, err := ticket.NewTicket(ticketSID, q.ID(), number, customerRef, cmd.CustomerName)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Ticket insert and counter advance commit together; the unique
	// index on (queue_id, number) backs this against other instances.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, tk); err != nil {
			return err
		}
		return uc.queueRepo.Update(txCtx, q)
	})
	if err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("ticket number already allocated, retry")
		}
		uc.logger.Errorw("failed to book ticket", "error", err, "queue_sid", cmd.QueueSID, "number", number)
		return nil, fmt.Errorf("failed to book ticket: %w", err)
	}

	position, err := waitingPosition(ctx, uc.ticketRepo, tk)
	if err != nil {
		uc.logger.Errorw("failed to compute position", "error", err, "ticket_sid", tk.SID())
		position = 0
	}
	waitingCount, err := uc.ticketRepo.CountByStatus(ctx, q.ID(), vo.StatusWaiting)
	if err != nil {
		uc.logger.Errorw("failed to count waiting tickets", "error", err, "queue_sid", cmd.QueueSID)
		waitingCount = int64(position)
	}

	token := ""
	if uc.tokens != nil {
		token, err = uc.tokens.Issue(tk.SID(), q.SID())
		if err != nil {
			uc.logger.Warnw("failed to issue ticket token", "error", err, "ticket_sid", tk.SID())
			token = ""
		}
	}

	release()

	publishEvents(uc.publisher, uc.logger, ticket.NewTicketCreatedEvent(
		tk.SID(),
		q.SID(),
		number,
		svc.FormatLabel(number),
		tk.CustomerName(),
		position,
		int(waitingCount),
		tk.CreatedAt(),
	))

	uc.logger.Infow("ticket booked",
		"ticket_sid", tk.SID(),
		"queue_sid", q.SID(),
		"number", number,
		"position", position,
	)

	return &BookTicketResult{
		TicketSID:    tk.SID(),
		QueueSID:     q.SID(),
		Number:       number,
		Label:        svc.FormatLabel(number),
		Status:       tk.Status().String(),
		Position:     position,
		WaitingCount: int(waitingCount),
		Token:        token,
		CreatedAt:    tk.CreatedAt(),
	}, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/counter"
	"lineup/internal/domain/queue"
	"lineup/internal/domain/service"
	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	"lineup/internal/shared/constants"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

// defaultUpNextLimit caps how many waiting tickets a call announcement
// previews when the ticket.position_preview setting is absent.
const defaultUpNextLimit = 10

type CallNextCommand struct {
	QueueSID   string
	CounterSID string
}

type CallNextResult struct {
	// Found is false when the queue had no waiting ticket. That is a
	// normal outcome, not an error.
	Found        bool
	TicketSID    string
	Number       int
	Label        string
	CustomerName string
	CounterSID   string
	CounterName  string
	CalledAt     *time.Time
	UpNext       []ticket.UpNextEntry
}

type CallNextUseCase struct {
	queueRepo   queue.QueueRepository
	ticketRepo  ticket.TicketRepository
	serviceRepo service.ServiceRepository
	counterRepo counter.CounterRepository
	txManager   TxManager
	locks       *lock.KeyedMutex
	publisher   events.EventPublisher
	logger      logger.Interface
	upNextLimit int
}

func NewCallNextUseCase(
	queueRepo queue.QueueRepository,
	ticketRepo ticket.TicketRepository,
	serviceRepo service.ServiceRepository,
	counterRepo counter.CounterRepository,
	txManager TxManager,
	locks *lock.KeyedMutex,
	publisher events.EventPublisher,
	logger logger.Interface,
	upNextLimit int,
) *CallNextUseCase {
	if upNextLimit <= 0 {
		upNextLimit = defaultUpNextLimit
	}
	return &CallNextUseCase{
		queueRepo:   queueRepo,
		ticketRepo:  ticketRepo,
		serviceRepo: serviceRepo,
		counterRepo: counterRepo,
		txManager:   txManager,
		locks:       locks,
		publisher:   publisher,
		logger:      logger,
		upNextLimit: upNextLimit,
	}
}

// Execute calls the lowest-numbered waiting ticket to a counter. The
// serving slot must be free; after success exactly one ticket in the
// queue is called or serving.
func (uc *CallNextUseCase) Execute(ctx context.Context, cmd CallNextCommand) (*CallNextResult, error) {
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

	if q.IsClosed() {
		return nil, apperrors.NewQueueClosedError(constants.ErrMsgQueueNotAccepting)
	}
	if !q.CanCallNext() {
		return nil, apperrors.NewInvalidStateError("queue is paused")
	}
	if q.HasServingTicket() {
		return nil, apperrors.NewAlreadyServingError(constants.ErrMsgFinishCurrentFirst)
	}

	tk, err := uc.ticketRepo.NextWaiting(ctx, q.ID())
	if err != nil {
		uc.logger.Errorw("failed to find next waiting ticket", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to find next waiting ticket: %w", err)
	}
	if tk == nil {
		// Empty queue: report that nothing was called.
		return &CallNextResult{Found: false}, nil
	}

	var ctr *counter.Counter
	var counterID *uint
	if cmd.CounterSID != "" {
		ctr, err = uc.counterRepo.GetBySID(ctx, cmd.CounterSID)
		if err != nil {
			uc.logger.Errorw("failed to get counter", "error", err, "counter_sid", cmd.CounterSID)
			return nil, fmt.Errorf("failed to get counter: %w", err)
		}
		if ctr == nil {
			return nil, apperrors.NewNotFoundError("counter not found")
		}
		if !ctr.IsActive() {
			return nil, apperrors.NewValidationError("counter is not active")
		}
		idValue := ctr.ID()
		counterID = &idValue
	}

	svc, err := uc.serviceRepo.GetByID(ctx, q.ServiceID())
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	prevStatus := tk.Status().String()
	if err := tk.Call(counterID); err != nil {
		return nil, apperrors.NewInvalidTransitionError(err.Error())
	}
	if err := q.OccupyServingSlot(tk.ID()); err != nil {
		return nil, apperrors.NewAlreadyServingError(constants.ErrMsgFinishCurrentFirst)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			return err
		}
		return uc.queueRepo.Update(txCtx, q)
	})
	if err != nil {
		uc.logger.Errorw("failed to call ticket", "error", err, "ticket_sid", tk.SID())
		return nil, fmt.Errorf("failed to call ticket: %w", err)
	}

	upNext, err := upNextEntries(ctx, uc.ticketRepo, svc, q.ID(), uc.upNextLimit)
	if err != nil {
		uc.logger.Warnw("failed to snapshot waiting line", "error", err, "queue_sid", cmd.QueueSID)
		upNext = nil
	}

	release()

	counterSID := ""
	counterName := ""
	if ctr != nil {
		counterSID = ctr.SID()
		counterName = ctr.Name()
	}

	publishEvents(uc.publisher, uc.logger,
		ticket.NewTicketStateChangedEvent(tk.SID(), q.SID(), tk.Number(), prevStatus, tk.Status().String()),
		ticket.NewTicketCalledEvent(
			tk.SID(),
			q.SID(),
			tk.Number(),
			svc.FormatLabel(tk.Number()),
			tk.CustomerName(),
			counterSID,
			counterName,
			*tk.CalledAt(),
			upNext,
		),
	)

	uc.logger.Infow("ticket called",
		"ticket_sid", tk.SID(),
		"queue_sid", q.SID(),
		"number", tk.Number(),
		"counter_sid", counterSID,
	)

	return &CallNextResult{
		Found:        true,
		TicketSID:    tk.SID(),
		Number:       tk.Number(),
		Label:        svc.FormatLabel(tk.Number()),
		CustomerName: tk.CustomerName(),
		CounterSID:   counterSID,
		CounterName:  counterName,
		CalledAt:     tk.CalledAt(),
		UpNext:       upNext,
	}, nil
}

package notification

import (
	"context"

	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	vo "lineup/internal/domain/ticket/valueobjects"
	"lineup/internal/infrastructure/cache"
	"lineup/internal/shared/logger"
)

// NoShowRecorder feeds the no-show tracker from ticket state changes.
// Staff surfaces read the tracker to flag repeat no-shows at booking
// time. Tracking failures are logged and swallowed; the state change
// itself already committed.
type NoShowRecorder struct {
	tickets ticket.TicketRepository
	tracker *cache.NoShowTracker
	logger  logger.Interface
}

func NewNoShowRecorder(tickets ticket.TicketRepository, tracker *cache.NoShowTracker, log logger.Interface) *NoShowRecorder {
	return &NoShowRecorder{
		tickets: tickets,
		tracker: tracker,
		logger:  log,
	}
}

// Register subscribes the recorder to ticket state changes.
func (r *NoShowRecorder) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(ticket.EventTypeTicketStateChanged, r)
}

func (r *NoShowRecorder) CanHandle(eventType string) bool {
	return eventType == ticket.EventTypeTicketStateChanged
}

func (r *NoShowRecorder) Handle(event events.DomainEvent) error {
	e, ok := event.(ticket.TicketStateChangedEvent)
	if !ok || e.NewStatus != vo.StatusNoShow.String() {
		return nil
	}

	ctx := context.Background()

	t, err := r.tickets.GetBySID(ctx, e.TicketSID)
	if err != nil {
		r.logger.Warnw("failed to load ticket for no-show tracking",
			"ticket_sid", e.TicketSID,
			"error", err,
		)
		return nil
	}
	if t == nil || t.CustomerRef() == "" {
		return nil
	}

	if err := r.tracker.Record(ctx, t.CustomerRef()); err != nil {
		r.logger.Warnw("failed to record no-show",
			"ticket_sid", e.TicketSID,
			"error", err,
		)
	}

	return nil
}

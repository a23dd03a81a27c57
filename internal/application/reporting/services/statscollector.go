package services

import (
	"context"

	"lineup/internal/domain/reporting"
	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	vo "lineup/internal/domain/ticket/valueobjects"
	"lineup/internal/shared/biztime"
	"lineup/internal/shared/logger"
)

// StatsCollector folds ticket events into the daily reporting
// aggregates. It subscribes to the dispatcher like any other handler;
// losing an event skews a count but never touches engine state.
type StatsCollector struct {
	stats  reporting.StatsRepository
	logger logger.Interface
}

func NewStatsCollector(stats reporting.StatsRepository, logger logger.Interface) *StatsCollector {
	return &StatsCollector{
		stats:  stats,
		logger: logger,
	}
}

// Register subscribes the collector to the ticket event stream.
func (c *StatsCollector) Register(subscriber events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTypeTicketCreated,
		ticket.EventTypeTicketCompleted,
		ticket.EventTypeTicketStateChanged,
	} {
		if err := subscriber.Subscribe(eventType, c); err != nil {
			return err
		}
	}
	return nil
}

func (c *StatsCollector) CanHandle(eventType string) bool {
	switch eventType {
	case ticket.EventTypeTicketCreated,
		ticket.EventTypeTicketCompleted,
		ticket.EventTypeTicketStateChanged:
		return true
	}
	return false
}

func (c *StatsCollector) Handle(event events.DomainEvent) error {
	ctx := context.Background()

	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		day := biztime.FormatDay(biztime.OperatingDay(e.CreatedAt))
		return c.stats.IncrementIssued(ctx, e.QueueSID, day)

	case ticket.TicketCompletedEvent:
		day := biztime.FormatDay(biztime.OperatingDay(e.CompletedAt))
		return c.stats.RecordCompletion(ctx, e.QueueSID, day, e.DwellSeconds, e.ServiceSeconds)

	case ticket.TicketStateChangedEvent:
		day := biztime.FormatDay(biztime.OperatingDay(e.ChangedAt))
		switch e.NewStatus {
		case vo.StatusCancelled.String():
			return c.stats.IncrementCancelled(ctx, e.QueueSID, day)
		case vo.StatusNoShow.String():
			return c.stats.IncrementNoShow(ctx, e.QueueSID, day)
		}
		return nil

	default:
		c.logger.Debugw("stats collector ignoring event", "event_type", event.GetEventType())
		return nil
	}
}

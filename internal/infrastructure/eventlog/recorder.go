package eventlog

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"lineup/internal/domain/shared/events"
	"lineup/internal/infrastructure/persistence/models"
	"lineup/internal/shared/logger"
)

// Recorder appends every domain event to the ticket_events table.
// The log is the audit trail for disputes ("my number was skipped")
// and a replay source for rebuilding read models. Writes are best
// effort; losing an audit row must not fail the operation that
// produced it.
type Recorder struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRecorder(database *gorm.DB, log logger.Interface) *Recorder {
	return &Recorder{
		db:     database,
		logger: log,
	}
}

// Register subscribes the recorder to every domain event.
func (r *Recorder) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(events.EventTypeAll, r)
}

func (r *Recorder) CanHandle(eventType string) bool {
	return true
}

func (r *Recorder) Handle(event events.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Warnw("failed to marshal event for audit log",
			"event_type", event.GetEventType(),
			"error", err,
		)
		return nil
	}

	model := &models.TicketEventModel{
		EventType:    event.GetEventType(),
		AggregateSID: event.GetAggregateID(),
		Payload:      payload,
		OccurredAt:   event.GetOccurredAt().UnixMilli(),
	}

	// Events publish after the originating transaction commits, so the
	// audit write uses the base connection rather than a request tx.
	if err := r.db.WithContext(context.Background()).Create(model).Error; err != nil {
		r.logger.Warnw("failed to append event to audit log",
			"event_type", event.GetEventType(),
			"aggregate_sid", event.GetAggregateID(),
			"error", err,
		)
	}

	return nil
}

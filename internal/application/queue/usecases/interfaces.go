package usecases

import (
	"context"

	"lineup/internal/domain/shared/events"
	"lineup/internal/shared/logger"
)

// TxManager runs a function within a database transaction. Satisfied by
// shared/db.TransactionManager; tests substitute a passthrough.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenIssuer signs ticket access tokens handed to customers at booking
// time for the self-service endpoints. Optional: a nil issuer disables
// tokens.
type TokenIssuer interface {
	Issue(ticketSID, queueSID string) (string, error)
}

// MarkdownRenderer converts announcement markdown into sanitized HTML.
// Optional: a nil renderer serves the raw markdown only.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// publishEvents hands events to the dispatcher after the queue lock has
// been released. Publishing is best-effort: a failure is logged, never
// returned, because engine state is already committed.
func publishEvents(publisher events.EventPublisher, log logger.Interface, evts ...events.DomainEvent) {
	if publisher == nil || len(evts) == 0 {
		return
	}

	if err := publisher.PublishAll(evts); err != nil {
		log.Warnw("failed to publish events", "count", len(evts), "error", err)
	}
}

// Executor interfaces let the HTTP handlers depend on use case behavior
// rather than concrete structs.

type CreateQueueExecutor interface {
	Execute(ctx context.Context, cmd CreateQueueCommand) (*CreateQueueResult, error)
}

type ListQueuesExecutor interface {
	Execute(ctx context.Context, cmd ListQueuesCommand) (*ListQueuesResult, error)
}

type QueueSnapshotExecutor interface {
	Execute(ctx context.Context, cmd QueueSnapshotCommand) (*QueueSnapshotResult, error)
}

type PauseQueueExecutor interface {
	Execute(ctx context.Context, cmd PauseQueueCommand) (*QueueStateResult, error)
}

type ResumeQueueExecutor interface {
	Execute(ctx context.Context, cmd ResumeQueueCommand) (*QueueStateResult, error)
}

type CloseQueueExecutor interface {
	Execute(ctx context.Context, cmd CloseQueueCommand) (*QueueStateResult, error)
}

type GetAnnouncementExecutor interface {
	Execute(ctx context.Context, cmd GetAnnouncementCommand) (*GetAnnouncementResult, error)
}

type UpdateAnnouncementExecutor interface {
	Execute(ctx context.Context, cmd UpdateAnnouncementCommand) (*UpdateAnnouncementResult, error)
}

type BookTicketExecutor interface {
	Execute(ctx context.Context, cmd BookTicketCommand) (*BookTicketResult, error)
}

type CallNextExecutor interface {
	Execute(ctx context.Context, cmd CallNextCommand) (*CallNextResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd GetTicketCommand) (*TicketDetail, error)
}

type FindTicketExecutor interface {
	Execute(ctx context.Context, cmd FindTicketCommand) (*TicketDetail, error)
}

type GetPositionExecutor interface {
	Execute(ctx context.Context, cmd GetPositionCommand) (*GetPositionResult, error)
}

type CancelTicketExecutor interface {
	Execute(ctx context.Context, cmd CancelTicketCommand) (*TicketStateResult, error)
}

type StartServingExecutor interface {
	Execute(ctx context.Context, cmd StartServingCommand) (*TicketStateResult, error)
}

type CompleteTicketExecutor interface {
	Execute(ctx context.Context, cmd CompleteTicketCommand) (*TicketStateResult, error)
}

type MarkNoShowExecutor interface {
	Execute(ctx context.Context, cmd MarkNoShowCommand) (*TicketStateResult, error)
}

package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/service"
	"lineup/internal/domain/ticket"
)

// waitingPosition computes the live position of a waiting ticket: the
// count of waiting tickets with a lower number in the same queue, plus
// one. Positions are always derived, never stored.
func waitingPosition(ctx context.Context, repo ticket.TicketRepository, tk *ticket.Ticket) (int, error) {
	ahead, err := repo.CountWaitingBefore(ctx, tk.QueueID(), tk.Number())
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets ahead: %w", err)
	}
	return int(ahead) + 1, nil
}

// ticketPosition applies the position rule across states: waiting
// tickets get their rank, called and serving tickets are at position 0,
// terminal tickets have no position (nil).
func ticketPosition(ctx context.Context, repo ticket.TicketRepository, tk *ticket.Ticket) (*int, error) {
	if tk.IsTerminal() {
		return nil, nil
	}

	if tk.Status().HoldsServingSlot() {
		zero := 0
		return &zero, nil
	}

	pos, err := waitingPosition(ctx, repo, tk)
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

// upNextEntries snapshots the head of the waiting line for call
// announcements. The list is in call order, so positions are ordinal.
func upNextEntries(ctx context.Context, repo ticket.TicketRepository, svc *service.Service, queueID uint, limit int) ([]ticket.UpNextEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	waiting, err := repo.ListWaiting(ctx, queueID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting tickets: %w", err)
	}

	entries := make([]ticket.UpNextEntry, 0, len(waiting))
	for i, tk := range waiting {
		entries = append(entries, ticket.UpNextEntry{
			TicketSID: tk.SID(),
			Number:    tk.Number(),
			Label:     svc.FormatLabel(tk.Number()),
			Position:  i + 1,
		})
	}
	return entries, nil
}

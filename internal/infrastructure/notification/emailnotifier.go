package notification

import (
	"context"

	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	"lineup/internal/shared/goroutine"
	"lineup/internal/shared/logger"
)

// TicketEmailSender sends customer-facing ticket emails.
type TicketEmailSender interface {
	SendTicketBookedEmail(to, label, ticketSID string, position int) error
	SendTicketCalledEmail(to, label, counterName string) error
}

// EmailNotifier emails customers on booking and on call-up. Domain
// events carry no contact details, so the notifier loads the ticket
// and resolves the contact from its customer ref. Delivery is best
// effort; a failed send never fails the triggering operation.
type EmailNotifier struct {
	tickets ticket.TicketRepository
	sender  TicketEmailSender
	logger  logger.Interface
}

func NewEmailNotifier(tickets ticket.TicketRepository, sender TicketEmailSender, log logger.Interface) *EmailNotifier {
	return &EmailNotifier{
		tickets: tickets,
		sender:  sender,
		logger:  log,
	}
}

// Register subscribes the notifier to the ticket events it emails on.
func (n *EmailNotifier) Register(subscriber events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTypeTicketCreated,
		ticket.EventTypeTicketCalled,
	} {
		if err := subscriber.Subscribe(eventType, n); err != nil {
			return err
		}
	}

	return nil
}

func (n *EmailNotifier) CanHandle(eventType string) bool {
	switch eventType {
	case ticket.EventTypeTicketCreated, ticket.EventTypeTicketCalled:
		return true
	default:
		return false
	}
}

// Handle dispatches the send to a background goroutine. SMTP round
// trips are slow and must not sit on the booking or call-next path.
func (n *EmailNotifier) Handle(event events.DomainEvent) error {
	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		goroutine.SafeGo(n.logger, "email-ticket-booked", func() {
			n.notifyBooked(e)
		})
	case ticket.TicketCalledEvent:
		goroutine.SafeGo(n.logger, "email-ticket-called", func() {
			n.notifyCalled(e)
		})
	}

	return nil
}

func (n *EmailNotifier) notifyBooked(e ticket.TicketCreatedEvent) {
	addr, ok := n.resolveContact(e.TicketSID)
	if !ok {
		return
	}

	if err := n.sender.SendTicketBookedEmail(addr, e.Label, e.TicketSID, e.Position); err != nil {
		n.logger.Warnw("failed to send booking email",
			"ticket_sid", e.TicketSID,
			"error", err,
		)
	}
}

func (n *EmailNotifier) notifyCalled(e ticket.TicketCalledEvent) {
	addr, ok := n.resolveContact(e.TicketSID)
	if !ok {
		return
	}

	if err := n.sender.SendTicketCalledEmail(addr, e.Label, e.CounterName); err != nil {
		n.logger.Warnw("failed to send call-up email",
			"ticket_sid", e.TicketSID,
			"error", err,
		)
	}
}

func (n *EmailNotifier) resolveContact(ticketSID string) (string, bool) {
	t, err := n.tickets.GetBySID(context.Background(), ticketSID)
	if err != nil {
		n.logger.Warnw("failed to load ticket for email notification",
			"ticket_sid", ticketSID,
			"error", err,
		)
		return "", false
	}
	if t == nil {
		return "", false
	}

	addr, ok := EmailFromRef(t.CustomerRef())
	if !ok {
		n.logger.Debugw("ticket customer ref has no email contact",
			"ticket_sid", ticketSID,
		)
		return "", false
	}

	return addr, true
}

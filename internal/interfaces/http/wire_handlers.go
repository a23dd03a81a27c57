package http

import (
	counterhandler "lineup/internal/interfaces/http/handlers/counter"
	healthhandler "lineup/internal/interfaces/http/handlers/health"
	queuehandler "lineup/internal/interfaces/http/handlers/queue"
	reporthandler "lineup/internal/interfaces/http/handlers/report"
	servicehandler "lineup/internal/interfaces/http/handlers/service"
	tickethandler "lineup/internal/interfaces/http/handlers/ticket"
	"lineup/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// Queue
	queueHandler  *queuehandler.QueueHandler
	streamHandler *queuehandler.StreamHandler

	// Ticket
	ticketHandler *tickethandler.TicketHandler

	// Catalog
	serviceHandler *servicehandler.ServiceHandler
	counterHandler *counterhandler.CounterHandler

	// Reporting
	reportHandler *reporthandler.ReportHandler

	// Health
	healthHandler *healthhandler.HealthHandler
}

// initHandlers creates the HTTP handlers and the route middlewares that
// depend on infrastructure services.
func (c *Container) initHandlers() {
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		queueHandler: queuehandler.NewQueueHandler(
			ucs.createQueueUC,
			ucs.listQueuesUC,
			ucs.queueSnapshotUC,
			ucs.pauseQueueUC,
			ucs.resumeQueueUC,
			ucs.closeQueueUC,
			ucs.callNextUC,
			ucs.getAnnouncementUC,
			ucs.updateAnnouncementUC,
		),
		streamHandler: queuehandler.NewStreamHandler(
			c.updateBus,
			ucs.queueSnapshotUC,
			c.cfg.Notification.StreamPingSecs,
			c.log,
		),
		ticketHandler: tickethandler.NewTicketHandler(
			ucs.bookTicketUC,
			ucs.getTicketUC,
			ucs.findTicketUC,
			ucs.getPositionUC,
			ucs.cancelTicketUC,
			ucs.startServingUC,
			ucs.completeUC,
			ucs.markNoShowUC,
		),
		serviceHandler: servicehandler.NewServiceHandler(
			ucs.createServiceUC,
			ucs.listServicesUC,
			ucs.getServiceUC,
			ucs.updateServiceUC,
		),
		counterHandler: counterhandler.NewCounterHandler(
			ucs.createCounterUC,
			ucs.listCountersUC,
			ucs.deactivateCounterUC,
		),
		reportHandler: reporthandler.NewReportHandler(ucs.dailyReportUC, ucs.queueReportUC),
		healthHandler: healthhandler.NewHealthHandler(c.db, c.redis),
	}

	c.ticketTokenMiddleware = middleware.NewTicketTokenMiddleware(
		c.ticketTokens,
		c.cfg.Ticket.RequireToken,
		c.log,
	)
}

package http

import (
	counterUsecases "lineup/internal/application/counter/usecases"
	queueUsecases "lineup/internal/application/queue/usecases"
	reportingUsecases "lineup/internal/application/reporting/usecases"
	serviceUsecases "lineup/internal/application/service/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Queue lifecycle
	createQueueUC        *queueUsecases.CreateQueueUseCase
	listQueuesUC         *queueUsecases.ListQueuesUseCase
	queueSnapshotUC      *queueUsecases.QueueSnapshotUseCase
	pauseQueueUC         *queueUsecases.PauseQueueUseCase
	resumeQueueUC        *queueUsecases.ResumeQueueUseCase
	closeQueueUC         *queueUsecases.CloseQueueUseCase
	closeExpiredUC       *queueUsecases.CloseExpiredQueuesUseCase
	callNextUC           *queueUsecases.CallNextUseCase
	getAnnouncementUC    *queueUsecases.GetAnnouncementUseCase
	updateAnnouncementUC *queueUsecases.UpdateAnnouncementUseCase

	// Ticket flow
	bookTicketUC   *queueUsecases.BookTicketUseCase
	getTicketUC    *queueUsecases.GetTicketUseCase
	findTicketUC   *queueUsecases.FindTicketUseCase
	getPositionUC  *queueUsecases.GetPositionUseCase
	cancelTicketUC *queueUsecases.CancelTicketUseCase
	startServingUC *queueUsecases.StartServingUseCase
	completeUC     *queueUsecases.CompleteTicketUseCase
	markNoShowUC   *queueUsecases.MarkNoShowUseCase

	// Service catalog
	createServiceUC *serviceUsecases.CreateServiceUseCase
	listServicesUC  *serviceUsecases.ListServicesUseCase
	getServiceUC    *serviceUsecases.GetServiceUseCase
	updateServiceUC *serviceUsecases.UpdateServiceUseCase

	// Counters
	createCounterUC     *counterUsecases.CreateCounterUseCase
	listCountersUC      *counterUsecases.ListCountersUseCase
	deactivateCounterUC *counterUsecases.DeactivateCounterUseCase

	// Reporting
	dailyReportUC *reportingUsecases.GetDailyReportUseCase
	queueReportUC *reportingUsecases.GetQueueReportUseCase
}

// initUseCases wires every use case against the repositories and shared
// services created in the earlier sections.
func (c *Container) initUseCases() {
	repos := c.repos
	log := c.log

	// BookTicket only issues access tokens when a token service is
	// configured; a nil issuer keeps the response tokenless.
	var tokenIssuer queueUsecases.TokenIssuer
	if c.ticketTokens != nil {
		tokenIssuer = c.ticketTokens
	}

	c.ucs = &allUseCases{
		createQueueUC: queueUsecases.NewCreateQueueUseCase(
			repos.queueRepo, repos.serviceRepo, c.dispatcher, log,
		),
		listQueuesUC: queueUsecases.NewListQueuesUseCase(
			repos.queueRepo, repos.serviceRepo, log,
		),
		queueSnapshotUC: queueUsecases.NewQueueSnapshotUseCase(
			repos.queueRepo, repos.ticketRepo, repos.serviceRepo, log,
		),
		pauseQueueUC: queueUsecases.NewPauseQueueUseCase(
			repos.queueRepo, c.locks, c.dispatcher, log,
		),
		resumeQueueUC: queueUsecases.NewResumeQueueUseCase(
			repos.queueRepo, c.locks, c.dispatcher, log,
		),
		closeQueueUC: queueUsecases.NewCloseQueueUseCase(
			repos.queueRepo, c.locks, c.dispatcher, log,
		),
		closeExpiredUC: queueUsecases.NewCloseExpiredQueuesUseCase(
			repos.queueRepo, c.locks, c.dispatcher, log,
		),
		callNextUC: queueUsecases.NewCallNextUseCase(
			repos.queueRepo, repos.ticketRepo, repos.serviceRepo, repos.counterRepo,
			c.txManager, c.locks, c.dispatcher, log, c.cfg.Ticket.PositionPreview,
		),
		getAnnouncementUC: queueUsecases.NewGetAnnouncementUseCase(
			repos.queueRepo, c.renderer, log,
		),
		updateAnnouncementUC: queueUsecases.NewUpdateAnnouncementUseCase(
			repos.queueRepo, c.locks, log,
		),

		bookTicketUC: queueUsecases.NewBookTicketUseCase(
			repos.queueRepo, repos.ticketRepo, repos.serviceRepo,
			c.txManager, c.locks, tokenIssuer, c.dispatcher, log,
		),
		getTicketUC: queueUsecases.NewGetTicketUseCase(
			repos.queueRepo, repos.ticketRepo, repos.serviceRepo, log,
		),
		findTicketUC: queueUsecases.NewFindTicketUseCase(
			repos.queueRepo, repos.ticketRepo, repos.serviceRepo, log,
		),
		getPositionUC: queueUsecases.NewGetPositionUseCase(
			repos.ticketRepo, log,
		),
		cancelTicketUC: queueUsecases.NewCancelTicketUseCase(
			repos.queueRepo, repos.ticketRepo, c.txManager, c.locks, c.dispatcher, log,
		),
		startServingUC: queueUsecases.NewStartServingUseCase(
			repos.queueRepo, repos.ticketRepo, c.locks, c.dispatcher, log,
		),
		completeUC: queueUsecases.NewCompleteTicketUseCase(
			repos.queueRepo, repos.ticketRepo, c.txManager, c.locks, c.dispatcher, log,
		),
		markNoShowUC: queueUsecases.NewMarkNoShowUseCase(
			repos.queueRepo, repos.ticketRepo, c.txManager, c.locks, c.dispatcher, log,
		),

		createServiceUC: serviceUsecases.NewCreateServiceUseCase(repos.serviceRepo, log),
		listServicesUC:  serviceUsecases.NewListServicesUseCase(repos.serviceRepo, log),
		getServiceUC:    serviceUsecases.NewGetServiceUseCase(repos.serviceRepo, log),
		updateServiceUC: serviceUsecases.NewUpdateServiceUseCase(repos.serviceRepo, log),

		createCounterUC:     counterUsecases.NewCreateCounterUseCase(repos.counterRepo, log),
		listCountersUC:      counterUsecases.NewListCountersUseCase(repos.counterRepo, log),
		deactivateCounterUC: counterUsecases.NewDeactivateCounterUseCase(repos.counterRepo, log),

		dailyReportUC: reportingUsecases.NewGetDailyReportUseCase(repos.statsRepo, log),
		queueReportUC: reportingUsecases.NewGetQueueReportUseCase(repos.queueRepo, repos.statsRepo, log),
	}
}

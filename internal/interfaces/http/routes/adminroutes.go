package routes

import (
	"github.com/gin-gonic/gin"

	counterhandler "lineup/internal/interfaces/http/handlers/counter"
	queuehandler "lineup/internal/interfaces/http/handlers/queue"
	reporthandler "lineup/internal/interfaces/http/handlers/report"
	servicehandler "lineup/internal/interfaces/http/handlers/service"
	tickethandler "lineup/internal/interfaces/http/handlers/ticket"
)

// AdminRouteConfig holds the dependencies for the staff console routes
type AdminRouteConfig struct {
	QueueHandler   *queuehandler.QueueHandler
	TicketHandler  *tickethandler.TicketHandler
	ServiceHandler *servicehandler.ServiceHandler
	CounterHandler *counterhandler.CounterHandler
	ReportHandler  *reporthandler.ReportHandler

	// Middlewares run before every /admin route. Authentication is left
	// to the deployment's gateway, so the default set is rate limiting.
	Middlewares []gin.HandlerFunc
}

// SetupAdminRoutes configures the staff console routes under /admin
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin", config.Middlewares...)

	services := admin.Group("/services")
	{
		services.POST("", config.ServiceHandler.CreateService)
		services.GET("", config.ServiceHandler.ListServices)
		services.GET("/:sid", config.ServiceHandler.GetService)
		services.PUT("/:sid", config.ServiceHandler.UpdateService)
	}

	queues := admin.Group("/queues")
	{
		queues.POST("", config.QueueHandler.CreateQueue)
		queues.POST("/:qid/pause", config.QueueHandler.PauseQueue)
		queues.POST("/:qid/resume", config.QueueHandler.ResumeQueue)
		queues.POST("/:qid/close", config.QueueHandler.CloseQueue)
		queues.POST("/:qid/call-next", config.QueueHandler.CallNext)
		queues.PUT("/:qid/announcement", config.QueueHandler.UpdateAnnouncement)
		queues.GET("/:qid/report", config.ReportHandler.GetQueueReport)
	}

	tickets := admin.Group("/tickets")
	{
		tickets.POST("/:tid/serve", config.TicketHandler.StartServing)
		tickets.POST("/:tid/complete", config.TicketHandler.CompleteTicket)
		tickets.POST("/:tid/no-show", config.TicketHandler.MarkNoShow)
		tickets.DELETE("/:tid", config.TicketHandler.CancelTicket)
	}

	counters := admin.Group("/counters")
	{
		counters.POST("", config.CounterHandler.CreateCounter)
		counters.GET("", config.CounterHandler.ListCounters)
		counters.POST("/:sid/deactivate", config.CounterHandler.DeactivateCounter)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("/daily", config.ReportHandler.GetDailyReport)
	}
}

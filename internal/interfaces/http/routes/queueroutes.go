package routes

import (
	"github.com/gin-gonic/gin"

	queuehandler "lineup/internal/interfaces/http/handlers/queue"
	tickethandler "lineup/internal/interfaces/http/handlers/ticket"
)

// QueueRouteConfig holds the dependencies for the customer-facing queue routes
type QueueRouteConfig struct {
	QueueHandler  *queuehandler.QueueHandler
	StreamHandler *queuehandler.StreamHandler
	TicketHandler *tickethandler.TicketHandler

	// BookingLimiter caps booking attempts per client IP.
	BookingLimiter gin.HandlerFunc
}

// SetupQueueRoutes configures the public queue routes: browsing, live
// snapshots, the update stream, and ticket booking
func SetupQueueRoutes(engine *gin.Engine, config *QueueRouteConfig) {
	queues := engine.Group("/queues")
	{
		queues.GET("", config.QueueHandler.ListQueues)
		queues.GET("/:qid/stream", config.StreamHandler.Stream)
		queues.GET("/:qid/announcement", config.QueueHandler.GetAnnouncement)
		queues.GET("/:qid/tickets/:number", config.TicketHandler.FindTicket)
		queues.POST("/:qid/tickets", config.BookingLimiter, config.TicketHandler.BookTicket)
		queues.GET("/:qid", config.QueueHandler.GetQueue)
	}
}

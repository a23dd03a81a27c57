package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "lineup/internal/interfaces/http/handlers/ticket"
	"lineup/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds the dependencies for ticket self-service routes
type TicketRouteConfig struct {
	TicketHandler   *tickethandler.TicketHandler
	TicketTokenAuth *middleware.TicketTokenMiddleware
}

// SetupTicketRoutes configures the routes a customer reaches with a booked
// ticket. All of them are guarded by the ticket token middleware
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.TicketTokenAuth.RequireTicketToken())
	{
		tickets.GET("/:tid", config.TicketHandler.GetTicket)
		tickets.GET("/:tid/position", config.TicketHandler.GetPosition)
		tickets.DELETE("/:tid", config.TicketHandler.CancelTicket)
	}
}

package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lineup/internal/infrastructure/ratelimit"
	"lineup/internal/interfaces/http/middleware"
	"lineup/internal/interfaces/http/routes"

	_ "lineup/docs"
)

// Rate limits per client IP.
const (
	bookingPerMinute = 30
	adminPerMinute   = 300
)

// SetupRoutes configures the global middleware chain and all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.Check)
	c.engine.GET("/health/ready", c.hdlrs.healthHandler.Ready)
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	bookingLimiter := middleware.RateLimit(
		c.rateLimiter, "booking", ratelimit.Config{PerMinute: bookingPerMinute}, c.log,
	)
	adminLimiter := middleware.RateLimit(
		c.rateLimiter, "admin", ratelimit.Config{PerMinute: adminPerMinute}, c.log,
	)

	routes.SetupQueueRoutes(c.engine, &routes.QueueRouteConfig{
		QueueHandler:   c.hdlrs.queueHandler,
		StreamHandler:  c.hdlrs.streamHandler,
		TicketHandler:  c.hdlrs.ticketHandler,
		BookingLimiter: bookingLimiter,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:   c.hdlrs.ticketHandler,
		TicketTokenAuth: c.ticketTokenMiddleware,
	})

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		QueueHandler:   c.hdlrs.queueHandler,
		TicketHandler:  c.hdlrs.ticketHandler,
		ServiceHandler: c.hdlrs.serviceHandler,
		CounterHandler: c.hdlrs.counterHandler,
		ReportHandler:  c.hdlrs.reportHandler,
		Middlewares:    []gin.HandlerFunc{adminLimiter},
	})
}

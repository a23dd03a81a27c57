package http

import (
	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	reportingServices "lineup/internal/application/reporting/services"
	"lineup/internal/domain/shared/events"
	"lineup/internal/infrastructure/auth"
	"lineup/internal/infrastructure/cache"
	"lineup/internal/infrastructure/config"
	"lineup/internal/infrastructure/eventlog"
	"lineup/internal/infrastructure/kafka"
	"lineup/internal/infrastructure/notification"
	"lineup/internal/infrastructure/pubsub"
	"lineup/internal/infrastructure/ratelimit"
	"lineup/internal/infrastructure/scheduler"
	"lineup/internal/interfaces/http/middleware"
	shareddb "lineup/internal/shared/db"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers, and background services. It is responsible for wiring everything
// together and providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	ticketTokenMiddleware *middleware.TicketTokenMiddleware
	rateLimiter           ratelimit.Limiter

	// Shared services
	locks        *lock.KeyedMutex
	txManager    *shareddb.TransactionManager
	dispatcher   *events.InMemoryEventDispatcher
	updateBus    *pubsub.RedisQueueUpdateBus
	ticketTokens *auth.TicketTokenService
	renderer     markdown.Service

	// Event handlers listening on the dispatcher
	broadcaster    *notification.QueueUpdateBroadcaster
	statsCollector *reportingServices.StatsCollector
	emailNotifier  *notification.EmailNotifier
	noShowRecorder *notification.NoShowRecorder
	eventRecorder  *eventlog.Recorder
	eventForwarder *kafka.EventForwarder
	noShowTracker  *cache.NoShowTracker

	// Background services
	kafkaProducer  sarama.SyncProducer
	queueScheduler *scheduler.QueueScheduler
}

// NewContainer creates a new Container with all dependencies wired together.
// Event handlers are registered and started before the first request can
// publish, so no event is ever dropped during startup.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, locks, buses, token service
	c.initInfrastructure()

	// Section 2: Repositories
	c.repos = newRepositories(db, log)

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Event handlers - broadcast, stats, email, no-show, audit, Kafka
	c.initEventHandlers()

	// Section 5: Handlers and middlewares
	c.initHandlers()

	// Section 6: Background services
	c.initBackgroundServices()

	return c
}

// GetEngine returns the underlying gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown stops background services in reverse start order. The HTTP
// server must already be drained when this is called.
func (c *Container) Shutdown() {
	// Stop the close-expired sweeper first so it cannot publish into a
	// stopped dispatcher
	if c.queueScheduler != nil {
		c.queueScheduler.Stop()
	}

	// Stop the dispatcher, draining buffered events to their handlers
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
	}

	// Close the Kafka producer after the dispatcher so forwarded events
	// still have a producer to write to
	if c.kafkaProducer != nil {
		if err := c.kafkaProducer.Close(); err != nil {
			c.log.Errorw("failed to close kafka producer", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}

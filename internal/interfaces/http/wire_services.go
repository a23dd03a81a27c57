package http

import (
	"context"

	"github.com/redis/go-redis/v9"

	reportingServices "lineup/internal/application/reporting/services"
	"lineup/internal/domain/shared/events"
	"lineup/internal/infrastructure/auth"
	"lineup/internal/infrastructure/cache"
	"lineup/internal/infrastructure/config"
	"lineup/internal/infrastructure/email"
	"lineup/internal/infrastructure/eventlog"
	"lineup/internal/infrastructure/kafka"
	"lineup/internal/infrastructure/notification"
	"lineup/internal/infrastructure/pubsub"
	"lineup/internal/infrastructure/ratelimit"
	"lineup/internal/infrastructure/scheduler"
	shareddb "lineup/internal/shared/db"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/services/markdown"
)

// eventBufferSize is the dispatcher queue depth. Publishing blocks once
// this many events are waiting on slow handlers.
const eventBufferSize = 256

// ============================================================
// Section 1: Infrastructure - Redis, locks, buses, token service
// ============================================================

func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	// Initialize Redis client
	c.redis = initRedis(cfg, log)

	// Per-queue mutation lock and the transaction manager shared by all
	// ticket-flow use cases
	c.locks = lock.NewKeyedMutex()
	c.txManager = shareddb.NewTransactionManager(c.db)

	// In-process domain event dispatcher
	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize)

	// Redis pub/sub bus carrying queue updates across instances
	c.updateBus = pubsub.NewRedisQueueUpdateBus(c.redis, cfg.Notification.ChannelPrefix, log)

	// Ticket access tokens; left nil when no secret is configured so
	// bookings stay tokenless in kiosk deployments
	if cfg.Ticket.TokenSecret != "" {
		c.ticketTokens = auth.NewTicketTokenService(cfg.Ticket.TokenSecret, cfg.Ticket.TokenExpHours)
	}

	// Markdown renderer for queue announcements
	c.renderer = markdown.NewService()

	// Redis-backed rate limiter shared by the booking and admin surfaces
	c.rateLimiter = ratelimit.NewRedisLimiter(c.redis)

	// No-show follow-up list
	c.noShowTracker = cache.NewNoShowTracker(c.redis, cfg.Notification.NoShowTTLDays)

	// Kafka producer, only when event forwarding is enabled
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewSyncProducer(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatalw("failed to create kafka producer", "error", err, "brokers", cfg.Kafka.Brokers)
		}
		c.kafkaProducer = producer
	}
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// ============================================================
// Section 4: Event handlers - broadcast, stats, email, no-show, audit, Kafka
// ============================================================

// initEventHandlers subscribes every event handler to the dispatcher and
// then starts it. Registration happens before the HTTP server accepts
// requests, so the first booking already reaches every handler.
func (c *Container) initEventHandlers() {
	cfg := c.cfg
	log := c.log

	// Broadcast queue updates to the Redis bus feeding the SSE streams
	c.broadcaster = notification.NewQueueUpdateBroadcaster(c.updateBus, log)
	if err := c.broadcaster.Register(c.dispatcher); err != nil {
		log.Fatalw("failed to register queue update broadcaster", "error", err)
	}

	// Fold ticket lifecycle events into per-queue daily stats rows
	c.statsCollector = reportingServices.NewStatsCollector(c.repos.statsRepo, log)
	if err := c.statsCollector.Register(c.dispatcher); err != nil {
		log.Fatalw("failed to register stats collector", "error", err)
	}

	// Persist the per-ticket event audit trail
	c.eventRecorder = eventlog.NewRecorder(c.db, log)
	if err := c.eventRecorder.Register(c.dispatcher); err != nil {
		log.Fatalw("failed to register ticket event recorder", "error", err)
	}

	// Track recent no-shows for staff follow-up
	c.noShowRecorder = notification.NewNoShowRecorder(c.repos.ticketRepo, c.noShowTracker, log)
	if err := c.noShowRecorder.Register(c.dispatcher); err != nil {
		log.Fatalw("failed to register no-show recorder", "error", err)
	}

	// Email customers on booking and call-up
	if cfg.Email.Enabled {
		sender := email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
		c.emailNotifier = notification.NewEmailNotifier(c.repos.ticketRepo, sender, log)
		if err := c.emailNotifier.Register(c.dispatcher); err != nil {
			log.Fatalw("failed to register email notifier", "error", err)
		}
	}

	// Forward domain events to Kafka for downstream consumers
	if c.kafkaProducer != nil {
		c.eventForwarder = kafka.NewEventForwarder(c.kafkaProducer, cfg.Kafka.TicketTopic, cfg.Kafka.QueueTopic, log)
		if err := c.eventForwarder.Register(c.dispatcher); err != nil {
			log.Fatalw("failed to register kafka event forwarder", "error", err)
		}
	}

	// Start the dispatcher once every handler is subscribed
	if err := c.dispatcher.Start(); err != nil {
		log.Fatalw("failed to start event dispatcher", "error", err)
	}
}

// ============================================================
// Section 6: Background services
// ============================================================

func (c *Container) initBackgroundServices() {
	c.queueScheduler = scheduler.NewQueueScheduler(
		c.ucs.closeExpiredUC,
		c.cfg.Queue.CloseSweepMinutes,
		c.log,
	)
	c.queueScheduler.Start(context.Background())
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	queueUsecases "lineup/internal/application/queue/usecases"
	"lineup/internal/domain/shared/events"
	"lineup/internal/infrastructure/config"
	"lineup/internal/infrastructure/database"
	"lineup/internal/infrastructure/notification"
	"lineup/internal/infrastructure/pubsub"
	"lineup/internal/infrastructure/repository"
	"lineup/internal/infrastructure/scheduler"
	"lineup/internal/shared/biztime"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

// eventBufferSize is the dispatcher queue depth. The worker only emits
// queue closed events, so a small buffer is enough.
const eventBufferSize = 64

func main() {
	// Parse environment from command line or env variable
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting queue close worker", "environment", env)

	// Business timezone drives operating-day boundaries for queues.
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		log.Fatalw("failed to initialize business timezone", "error", err)
	}

	// Initialize database
	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Test Redis connection
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	// Wire the close-expired sweep: queues closed by the sweep still
	// broadcast their final snapshot to waiting-screen subscribers.
	queueRepo := repository.NewQueueRepository(database.Get())
	locks := lock.NewKeyedMutex()
	updateBus := pubsub.NewRedisQueueUpdateBus(redisClient, cfg.Notification.ChannelPrefix, log)

	dispatcher := events.NewInMemoryEventDispatcher(eventBufferSize)
	broadcaster := notification.NewQueueUpdateBroadcaster(updateBus, log)
	if err := broadcaster.Register(dispatcher); err != nil {
		log.Fatalw("failed to register queue update broadcaster", "error", err)
	}
	if err := dispatcher.Start(); err != nil {
		log.Fatalw("failed to start event dispatcher", "error", err)
	}

	closeExpiredUC := queueUsecases.NewCloseExpiredQueuesUseCase(queueRepo, locks, dispatcher, log)
	queueScheduler := scheduler.NewQueueScheduler(closeExpiredUC, cfg.Queue.CloseSweepMinutes, log)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queueScheduler.Start(ctx)

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	// Stop the sweep before the dispatcher so no event is published
	// into a stopped dispatcher.
	queueScheduler.Stop()
	if err := dispatcher.Stop(); err != nil {
		log.Errorw("failed to stop event dispatcher", "error", err)
	}

	log.Infow("queue close worker stopped")
}

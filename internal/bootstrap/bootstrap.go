package bootstrap

import (
	"context"
	"fmt"
	"time"

	"wheel-server/internal/config"
	"wheel-server/internal/observability"
	"wheel-server/internal/store"

	"wheel-server/internal/auth/handler"
	"wheel-server/internal/auth/processor"
	kafkaClient "wheel-server/internal/clients/kafka"
	redisClient "wheel-server/internal/clients/redis"
	"wheel-server/internal/events"
	"wheel-server/internal/jobs"
	participationHandler "wheel-server/internal/participation/handler"
	participationProcessor "wheel-server/internal/participation/processor"
	"wheel-server/internal/ratelimit"
	statsHandler "wheel-server/internal/stats/handler"
	statsProcessor "wheel-server/internal/stats/processor"
	"wheel-server/internal/tenants"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler          handler.Handler
	ParticipationHandler participationHandler.Handler
	StatsHandler         statsHandler.Handler

	// Middleware
	PlayLimiter *ratelimit.Service

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	JobClient     *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), cfg.Engine.StoreTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Tenant configuration, cached in Redis when enabled
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		// The provider reads the store directly without a cache
		logger.WarnWithError(ctx, "redis unavailable, tenant config cache disabled", err)
		deps.Redis = nil
	}
	// Per-client play throttling shares the same Redis and is off without it
	deps.PlayLimiter = ratelimit.NewService(deps.Redis, cfg.RateLimit.PlaysPerMinute, time.Minute, logger)

	tenantProvider := tenants.NewProvider(&deps.Store, deps.Redis, cfg.Engine.TenantCacheTTL, cfg.Engine.DefaultTimezone, logger)

	// Participation events go to Kafka when brokers are configured
	var producer events.EventProducer
	if brokers := cfg.Kafka.KafkaBrokerList(); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Info(ctx, "KAFKA_BROKERS not set, participation events disabled")
	}
	eventPublisher := events.NewPublisher(producer, logger)

	// Initialize job client for on-demand aggregate rebuilds
	deps.JobClient = jobs.NewClient(cfg.Jobs.RedisAddr, logger)

	// Initialize auth processor and handler
	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = handler.New(&authProc, logger)

	// Initialize participation processor and handler
	participationProc := participationProcessor.New(&deps.Store, tenantProvider, eventPublisher, logger)
	deps.ParticipationHandler = participationHandler.New(&participationProc, logger)

	// Initialize stats processor and handler
	statsProc := statsProcessor.New(&deps.Store, tenantProvider, logger)
	deps.StatsHandler = statsHandler.New(&statsProc, deps.JobClient, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close job client", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close database", err)
	}
}

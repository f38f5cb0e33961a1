package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	redisClient "wheel-server/internal/clients/redis"
	"wheel-server/internal/config"
	"wheel-server/internal/jobs"
	"wheel-server/internal/jobs/workers"
	"wheel-server/internal/observability"
	statsProcessor "wheel-server/internal/stats/processor"
	"wheel-server/internal/store"
	"wheel-server/internal/tenants"

	"github.com/hibiken/asynq"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	logger.Info(ctx, "Starting background worker server...")

	// Initialize store
	dataStore, err := store.New(cfg.Database.ConnectionString(), cfg.Engine.StoreTimeout, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}
	defer dataStore.Close()

	cache, err := redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.WarnWithError(ctx, "redis unavailable, tenant config cache disabled", err)
	}
	defer cache.Close()

	tenantProvider := tenants.NewProvider(&dataStore, cache, cfg.Engine.TenantCacheTTL, cfg.Engine.DefaultTimezone, logger)
	statsProc := statsProcessor.New(&dataStore, tenantProvider, logger)

	// Initialize workers
	reconcileWorker := workers.NewReconcileWorker(&statsProc, logger)

	redisOpt := asynq.RedisClientOpt{Addr: cfg.Jobs.RedisAddr}

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues: map[string]int{
				jobs.QueueDefault:     3,
				jobs.QueueMaintenance: 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				ctx = observability.WithFields(ctx, observability.Field{Key: "task_type", Value: task.Type()})
				logger.Error(ctx, "task failed", err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeStatsReconcile, reconcileWorker.ProcessReconcileTask)

	// Nightly rebuild of the previous day's aggregates
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Logger: &asynqLogger{logger: logger},
		},
	)

	reconcileTask, err := jobs.NewReconcileTask(jobs.ReconcileJobPayload{})
	if err != nil {
		logger.Fatal(ctx, "failed to create reconcile task", err)
	}
	if _, err := scheduler.Register(cfg.Jobs.ReconcileCronSpec, reconcileTask); err != nil {
		logger.Fatal(ctx, "failed to register reconcile schedule", err)
	}

	// Start the scheduler
	if err := scheduler.Start(); err != nil {
		logger.Fatal(ctx, "failed to start scheduler", err)
	}
	defer scheduler.Shutdown()

	// Start processes tasks in the background until Shutdown
	if err := srv.Start(mux); err != nil {
		logger.Fatal(ctx, "failed to start worker server", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s (reconcile schedule %q)", cfg.Jobs.RedisAddr, cfg.Jobs.ReconcileCronSpec))

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	// Graceful shutdown
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(context.Background(), fmt.Sprint(args...), nil)
}

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/jobs"
	"wheel-server/internal/observability"
	statsProcessor "wheel-server/internal/stats/processor"
	"wheel-server/internal/store"
	"wheel-server/internal/tenants"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Reconciler rebuilds daily aggregates from the participation ledger
type Reconciler interface {
	ReconcilePreviousDay(ctx context.Context) (statsProcessor.ReconcileResult, error)
	ReconcileDay(ctx context.Context, tenantID uuid.UUID, day time.Time) (store.DailyAggregate, error)
}

// ReconcileWorker handles aggregate reconciliation jobs
type ReconcileWorker struct {
	reconciler Reconciler
	logger     *observability.Logger
}

// NewReconcileWorker creates a new reconcile worker
func NewReconcileWorker(reconciler Reconciler, logger *observability.Logger) *ReconcileWorker {
	return &ReconcileWorker{
		reconciler: reconciler,
		logger:     logger,
	}
}

// ProcessReconcileTask processes a reconcile task (for Asynq)
func (w *ReconcileWorker) ProcessReconcileTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.ReconcileJobPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal reconcile job payload", err)
			return fmt.Errorf("failed to unmarshal reconcile job payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	if err := payload.Validate(); err != nil {
		w.logger.Error(ctx, "invalid reconcile job payload", err)
		return fmt.Errorf("invalid reconcile job payload: %v: %w", err, asynq.SkipRetry)
	}

	return w.processReconcile(ctx, payload)
}

// processReconcile contains the core reconciliation logic
func (w *ReconcileWorker) processReconcile(ctx context.Context, payload jobs.ReconcileJobPayload) error {
	if payload.TenantID == nil {
		result, err := w.reconciler.ReconcilePreviousDay(ctx)
		if err != nil {
			return fmt.Errorf("failed to reconcile previous day (%d of %d tenants failed): %w", result.Failed, result.Tenants, err)
		}
		return nil
	}

	day, err := statsProcessor.ParseDay(payload.Day)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: *payload.TenantID},
		observability.Field{Key: "day", Value: payload.Day},
	)
	if _, err := w.reconciler.ReconcileDay(ctx, *payload.TenantID, day); err != nil {
		if errors.Is(err, tenants.ErrTenantNotFound) || errors.Is(err, tenants.ErrInvalidTenantConfig) ||
			errors.Is(err, statsProcessor.ErrDayNotClosed) {
			return fmt.Errorf("failed to reconcile tenant day: %v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to reconcile tenant day: %w", err)
	}

	w.logger.Info(ctx, "reconciled tenant day")
	return nil
}

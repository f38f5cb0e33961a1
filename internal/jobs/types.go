package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeStatsReconcile = "stats:reconcile"
)

// Queue names
const (
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)

const (
	reconcileMaxRetry = 3
	reconcileTimeout  = 10 * time.Minute
	// reconcileUniqueTTL drops duplicate enqueues of the same rebuild
	reconcileUniqueTTL = 15 * time.Minute
)

// ReconcileJobPayload selects what to rebuild. An empty payload rebuilds the
// previous day of every active tenant; TenantID and Day together rebuild one day.
type ReconcileJobPayload struct {
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	Day      string     `json:"day,omitempty"` // YYYY-MM-DD in the tenant's calendar
}

// Validate checks that TenantID and Day are set together
func (p ReconcileJobPayload) Validate() error {
	if (p.TenantID == nil) != (p.Day == "") {
		return errors.New("tenant_id and day must be set together")
	}
	if p.Day != "" {
		if _, err := time.Parse("2006-01-02", p.Day); err != nil {
			return fmt.Errorf("invalid day %q: %w", p.Day, err)
		}
	}
	return nil
}

// NewReconcileTask creates a new aggregate reconciliation task
func NewReconcileTask(payload ReconcileJobPayload) (*asynq.Task, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeStatsReconcile, data,
		asynq.Queue(QueueMaintenance),
		asynq.MaxRetry(reconcileMaxRetry),
		asynq.Timeout(reconcileTimeout),
		asynq.Unique(reconcileUniqueTTL),
	), nil
}

package jobs

import (
	"context"
	"errors"
	"fmt"

	"wheel-server/internal/observability"

	"github.com/hibiken/asynq"
)

// ErrAlreadyQueued is returned when an identical reconcile task is still pending
var ErrAlreadyQueued = errors.New("reconcile task already queued")

// taskQueue is the part of asynq.Client used to enqueue tasks
type taskQueue interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client handles enqueueing background jobs
type Client struct {
	client taskQueue
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueReconcileJob enqueues an aggregate reconciliation job.
// An identical job already waiting in the queue is not duplicated; ErrAlreadyQueued is returned instead.
func (c *Client) EnqueueReconcileJob(ctx context.Context, payload ReconcileJobPayload) error {
	task, err := NewReconcileTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create reconcile task", err)
		return fmt.Errorf("failed to create reconcile task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			c.logger.Info(ctx, "reconcile task already queued")
			return ErrAlreadyQueued
		}
		c.logger.Error(ctx, "failed to enqueue reconcile task", err)
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued reconcile task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

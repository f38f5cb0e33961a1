package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wheel-server/internal/apierrors"
	authHandler "wheel-server/internal/auth/handler"
	"wheel-server/internal/jobs"
	"wheel-server/internal/observability"
	"wheel-server/internal/stats/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StatsService is the part of the stats processor served over HTTP
type StatsService interface {
	GetDailyStats(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (processor.DailyStats, error)
	CheckRebuildDay(ctx context.Context, tenantID uuid.UUID, day time.Time) error
}

// ReconcileEnqueuer queues aggregate rebuilds for the worker
type ReconcileEnqueuer interface {
	EnqueueReconcileJob(ctx context.Context, payload jobs.ReconcileJobPayload) error
}

type Handler struct {
	processor StatsService
	jobs      ReconcileEnqueuer
	logger    *observability.Logger
}

func New(processor StatsService, enqueuer ReconcileEnqueuer, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		jobs:      enqueuer,
		logger:    logger,
	}
}

// DailyStatsQuery holds the optional inclusive day range
type DailyStatsQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// HandleGetDailyStats handles GET /api/v1/staff/stats
func (h *Handler) HandleGetDailyStats(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID, ok := authHandler.StaffTenantID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("tenant not found in context"))
		return
	}

	var query DailyStatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	from, err := processor.ParseDay(query.From)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	to, err := processor.ParseDay(query.To)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	stats, err := h.processor.GetDailyStats(ctx, tenantID, from, to)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RebuildDayQuery names the tenant day whose counters are rebuilt
type RebuildDayQuery struct {
	Day string `form:"day" binding:"required,datetime=2006-01-02"`
}

// HandleRebuildDay handles POST /api/v1/staff/stats/rebuild.
// The rebuild runs in the worker; the request only queues it. Only days that have
// ended in the tenant's timezone are accepted.
func (h *Handler) HandleRebuildDay(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID, ok := authHandler.StaffTenantID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("tenant not found in context"))
		return
	}

	var query RebuildDayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	day, err := processor.ParseDay(query.Day)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if err := h.processor.CheckRebuildDay(ctx, tenantID, day); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	status := "queued"
	if err := h.jobs.EnqueueReconcileJob(ctx, jobs.ReconcileJobPayload{TenantID: &tenantID, Day: query.Day}); err != nil {
		if !errors.Is(err, jobs.ErrAlreadyQueued) {
			apierrors.RespondWithError(c, err)
			return
		}
		status = "already_queued"
	}

	c.JSON(http.StatusAccepted, gin.H{"day": query.Day, "status": status})
}

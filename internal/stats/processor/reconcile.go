package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/calendar"
	"wheel-server/internal/observability"
	"wheel-server/internal/store"
	"wheel-server/internal/tenants"

	"github.com/google/uuid"
)

// ReconcileResult summarizes one reconciliation run
type ReconcileResult struct {
	Tenants int `json:"tenants"`
	Rebuilt int `json:"rebuilt"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// ReconcileDay rebuilds one tenant's counters for a calendar day from the participation ledger.
// Only days that have ended in the tenant's timezone can be rebuilt; the current day still takes plays.
func (p *StatsProcessor) ReconcileDay(ctx context.Context, tenantID uuid.UUID, day time.Time) (store.DailyAggregate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tenant_id", Value: tenantID})

	cfg, err := p.tenants.Get(ctx, tenantID)
	if err != nil {
		return store.DailyAggregate{}, err
	}

	dayStart, err := p.closedDayStart(cfg, day)
	if err != nil {
		return store.DailyAggregate{}, err
	}
	return p.rebuild(ctx, tenantID, dayStart)
}

// CheckRebuildDay reports ErrDayNotClosed when day has not yet ended for the tenant
func (p *StatsProcessor) CheckRebuildDay(ctx context.Context, tenantID uuid.UUID, day time.Time) error {
	cfg, err := p.tenants.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	_, err = p.closedDayStart(cfg, day)
	return err
}

// closedDayStart resolves day to its first instant in the tenant's timezone
func (p *StatsProcessor) closedDayStart(cfg tenants.Config, day time.Time) (time.Time, error) {
	dayStart := calendar.StartOfDay(day.Year(), day.Month(), day.Day(), cfg.Location())
	if !dayStart.Before(cfg.DayStart(p.now())) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDayNotClosed, day.Format(dayLayout))
	}
	return dayStart, nil
}

// ReconcilePreviousDay rebuilds yesterday's counters for every active tenant, yesterday being
// taken in each tenant's own timezone. Tenants with an invalid configuration are skipped;
// store failures are collected and returned together after all tenants were attempted.
func (p *StatsProcessor) ReconcilePreviousDay(ctx context.Context) (ReconcileResult, error) {
	activeTenants, err := p.store.ListActiveTenants(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active tenants", err)
		return ReconcileResult{}, err
	}

	now := p.now()
	result := ReconcileResult{Tenants: len(activeTenants)}
	var errs []error

	for _, tenant := range activeTenants {
		tenantCtx := observability.WithFields(ctx, observability.Field{Key: "tenant_id", Value: tenant.ID})

		cfg, err := p.tenants.Get(tenantCtx, tenant.ID)
		if err != nil {
			if errors.Is(err, tenants.ErrInvalidTenantConfig) || errors.Is(err, tenants.ErrTenantNotFound) {
				p.logger.WarnWithError(tenantCtx, "skipping tenant during reconciliation", err)
				result.Skipped++
				continue
			}
			p.logger.Error(tenantCtx, "failed to get tenant config", err)
			result.Failed++
			errs = append(errs, fmt.Errorf("tenant %s: %w", tenant.ID, err))
			continue
		}

		y, m, d := cfg.DayStart(now).Date()
		dayStart := calendar.StartOfDay(y, m, d-1, cfg.Location())
		if _, err := p.rebuild(tenantCtx, tenant.ID, dayStart); err != nil {
			result.Failed++
			errs = append(errs, fmt.Errorf("tenant %s: %w", tenant.ID, err))
			continue
		}
		result.Rebuilt++
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenants", Value: result.Tenants},
		observability.Field{Key: "rebuilt", Value: result.Rebuilt},
		observability.Field{Key: "skipped", Value: result.Skipped},
		observability.Field{Key: "failed", Value: result.Failed},
	)
	p.logger.Info(ctx, "daily aggregate reconciliation finished")

	return result, errors.Join(errs...)
}

func (p *StatsProcessor) rebuild(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (store.DailyAggregate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "day", Value: dayStart.Format(dayLayout)})

	aggregate, err := p.store.RebuildDailyAggregate(ctx, tenantID, dayStart)
	if err != nil {
		p.logger.Error(ctx, "failed to rebuild daily aggregate", err)
		return store.DailyAggregate{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "plays", Value: aggregate.Plays},
		observability.Field{Key: "wins", Value: aggregate.Wins},
	)
	p.logger.Info(ctx, "daily aggregate rebuilt")
	return aggregate, nil
}

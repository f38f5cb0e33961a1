package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/observability"
	"wheel-server/internal/store"
	"wheel-server/internal/tenants"

	"github.com/google/uuid"
)

const (
	dayLayout = "2006-01-02"

	// maxRangeDays bounds a single stats query
	maxRangeDays = 366

	defaultRangeDays = 7
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrDayNotClosed     = errors.New("day has not ended in the tenant timezone")
	ErrTenantNotFound   = tenants.ErrTenantNotFound
)

type StatsProcessor struct {
	store   StatsStore
	tenants TenantProvider
	logger  *observability.Logger
	now     func() time.Time
}

func New(store StatsStore, tenants TenantProvider, logger *observability.Logger) StatsProcessor {
	return StatsProcessor{
		store:   store,
		tenants: tenants,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the wall clock, used by tests
func (p StatsProcessor) WithClock(now func() time.Time) StatsProcessor {
	p.now = now
	return p
}

// DayStats holds the counters of one tenant-local day
type DayStats struct {
	Day   string `json:"day"`
	Plays int    `json:"plays"`
	Wins  int    `json:"wins"`
}

// DailyStats is the per-day breakdown of a range, with days without plays reported as zero
type DailyStats struct {
	TenantID   uuid.UUID  `json:"tenant_id"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	Days       []DayStats `json:"days"`
	TotalPlays int        `json:"total_plays"`
	TotalWins  int        `json:"total_wins"`
}

// ParseDay parses a YYYY-MM-DD calendar day. An empty string yields the zero time.
func ParseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateRange, s)
	}
	return day, nil
}

// GetDailyStats returns plays and wins per tenant day for the inclusive range [from, to].
// When both bounds are zero the range is the last seven tenant days including today.
func (p *StatsProcessor) GetDailyStats(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (DailyStats, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tenant_id", Value: tenantID})

	cfg, err := p.tenants.Get(ctx, tenantID)
	if err != nil {
		return DailyStats{}, err
	}

	from, to, err = p.resolveRange(cfg, from, to)
	if err != nil {
		return DailyStats{}, err
	}

	aggregates, err := p.store.GetDailyAggregates(ctx, tenantID, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to get daily aggregates", err)
		return DailyStats{}, err
	}

	byDay := make(map[string]store.DailyAggregate, len(aggregates))
	for _, a := range aggregates {
		byDay[a.Day.Format(dayLayout)] = a
	}

	stats := DailyStats{
		TenantID: tenantID,
		From:     from.Format(dayLayout),
		To:       to.Format(dayLayout),
	}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayLayout)
		a := byDay[key]
		stats.Days = append(stats.Days, DayStats{Day: key, Plays: a.Plays, Wins: a.Wins})
		stats.TotalPlays += a.Plays
		stats.TotalWins += a.Wins
	}

	return stats, nil
}

// resolveRange normalizes both bounds to UTC calendar days and checks the range
func (p *StatsProcessor) resolveRange(cfg tenants.Config, from, to time.Time) (time.Time, time.Time, error) {
	if from.IsZero() && to.IsZero() {
		today := cfg.LocalTime(p.now())
		to = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		from = to.AddDate(0, 0, -(defaultRangeDays - 1))
		return from, to, nil
	}
	if from.IsZero() || to.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: both from and to are required", ErrInvalidDateRange)
	}

	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, from.Format(dayLayout), to.Format(dayLayout))
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > maxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d days exceeds the maximum of %d", ErrInvalidDateRange, days, maxRangeDays)
	}
	return from, to, nil
}

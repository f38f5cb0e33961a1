package store

import (
	"context"
	"time"

	"wheel-server/internal/calendar"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const sqlIncrementDailyAggregate = `
INSERT INTO daily_aggregates (tenant_id, day, plays, wins, updated_at)
VALUES ($1, $2::date, 1, $3, NOW())
ON CONFLICT (tenant_id, day) DO UPDATE
SET plays = daily_aggregates.plays + 1,
    wins = daily_aggregates.wins + EXCLUDED.wins,
    updated_at = NOW()
`

// incrementDailyAggregate is an atomic upsert-increment, never a read-modify-write.
func incrementDailyAggregate(ctx context.Context, tx *sqlx.Tx, tenantID uuid.UUID, day string, won bool) error {
	wins := 0
	if won {
		wins = 1
	}
	if _, err := tx.ExecContext(ctx, sqlIncrementDailyAggregate, tenantID, day, wins); err != nil {
		return wrapErr(err, "failed to increment daily aggregate")
	}
	return nil
}

const sqlGetDailyAggregates = `
SELECT tenant_id, day, plays, wins, updated_at
FROM daily_aggregates
WHERE tenant_id = $1 AND day BETWEEN $2::date AND $3::date
ORDER BY day
`

// GetDailyAggregates retrieves the stored counters for an inclusive day range.
// Days without plays have no row.
func (s *Store) GetDailyAggregates(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]DailyAggregate, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var aggregates []DailyAggregate
	err := s.db.SelectContext(ctx, &aggregates, sqlGetDailyAggregates, tenantID, dayString(from), dayString(to))
	if err != nil {
		return nil, wrapErr(err, "failed to get daily aggregates")
	}
	return aggregates, nil
}

const sqlRebuildDailyAggregate = `
INSERT INTO daily_aggregates (tenant_id, day, plays, wins, updated_at)
SELECT $1, $2::date, COUNT(*), COUNT(*) FILTER (WHERE won), NOW()
FROM participations
WHERE tenant_id = $1 AND created_at >= $3 AND created_at < $4
ON CONFLICT (tenant_id, day) DO UPDATE
SET plays = EXCLUDED.plays,
    wins = EXCLUDED.wins,
    updated_at = NOW()
RETURNING tenant_id, day, plays, wins, updated_at
`

// RebuildDailyAggregate recomputes one day's counters from the ledger.
// dayStart must be the first instant of the day in the tenant's timezone; the day ends where the next one starts.
func (s *Store) RebuildDailyAggregate(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (DailyAggregate, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	dayEnd := calendar.NextDay(dayStart)

	var aggregate DailyAggregate
	err := s.db.GetContext(ctx, &aggregate, sqlRebuildDailyAggregate, tenantID, dayString(dayStart), dayStart, dayEnd)
	if err != nil {
		return DailyAggregate{}, wrapErr(err, "failed to rebuild daily aggregate")
	}
	return aggregate, nil
}

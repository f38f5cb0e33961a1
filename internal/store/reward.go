package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

const sqlGetActiveRewardsByTenant = `
SELECT id, tenant_id, label, weight, is_win, active, position, created_at, updated_at
FROM rewards
WHERE tenant_id = $1 AND active = TRUE
ORDER BY position, created_at, id
`

// GetActiveRewardsByTenant retrieves the tenant's active rewards in draw order.
// The draw and the wheel segments both rely on this ordering.
func (s *Store) GetActiveRewardsByTenant(ctx context.Context, tenantID uuid.UUID) ([]Reward, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rewards []Reward
	err := s.db.SelectContext(ctx, &rewards, sqlGetActiveRewardsByTenant, tenantID)
	if err != nil {
		return nil, wrapErr(err, "failed to get active rewards by tenant")
	}
	return rewards, nil
}

const sqlGetRewardByID = `
SELECT id, tenant_id, label, weight, is_win, active, position, created_at, updated_at
FROM rewards
WHERE id = $1
`

// GetRewardByID retrieves a reward regardless of whether it is still active
func (s *Store) GetRewardByID(ctx context.Context, rewardID uuid.UUID) (Reward, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardByID, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reward{}, ErrNotFound
		}
		return Reward{}, wrapErr(err, "failed to get reward by id")
	}
	return reward, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

const sqlGetTenantByID = `
SELECT id, name, timezone, max_plays_per_day, replay_delay_hours, reward_validity_days,
       enforce_replay_cooldown, status, created_at, updated_at
FROM tenants
WHERE id = $1
`

// GetTenantByID retrieves a tenant's play configuration
func (s *Store) GetTenantByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var tenant Tenant
	err := s.db.GetContext(ctx, &tenant, sqlGetTenantByID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tenant{}, ErrNotFound
		}
		return Tenant{}, wrapErr(err, "failed to get tenant by id")
	}
	return tenant, nil
}

const sqlListActiveTenants = `
SELECT id, name, timezone, max_plays_per_day, replay_delay_hours, reward_validity_days,
       enforce_replay_cooldown, status, created_at, updated_at
FROM tenants
WHERE status = $1
ORDER BY created_at
`

// ListActiveTenants retrieves every tenant that currently accepts plays
func (s *Store) ListActiveTenants(ctx context.Context) ([]Tenant, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var tenants []Tenant
	err := s.db.SelectContext(ctx, &tenants, sqlListActiveTenants, TenantStatusActive)
	if err != nil {
		return nil, wrapErr(err, "failed to list active tenants")
	}
	return tenants, nil
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Tenant Fixtures ---

// TenantOpts customizes tenant creation.
type TenantOpts struct {
	Name                  string
	Timezone              string
	MaxPlaysPerDay        int
	ReplayDelayHours      int
	RewardValidityDays    int
	EnforceReplayCooldown bool
	Status                string
}

// DefaultTenantOpts returns sensible defaults for tenant creation.
func DefaultTenantOpts() TenantOpts {
	return TenantOpts{
		Name:               "Test Venue " + uuid.New().String()[:8],
		Timezone:           "UTC",
		MaxPlaysPerDay:     3,
		ReplayDelayHours:   24,
		RewardValidityDays: 30,
		Status:             TenantStatusActive,
	}
}

// CreateTenant creates a test tenant with optional customization.
// Uses raw SQL since tenants are managed outside the engine.
func (f *Fixtures) CreateTenant(opts ...func(*TenantOpts)) Tenant {
	f.t.Helper()
	o := DefaultTenantOpts()
	for _, fn := range opts {
		fn(&o)
	}

	var tenant Tenant
	query := `
		INSERT INTO tenants (name, timezone, max_plays_per_day, replay_delay_hours, reward_validity_days, enforce_replay_cooldown, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, timezone, max_plays_per_day, replay_delay_hours, reward_validity_days,
		          enforce_replay_cooldown, status, created_at, updated_at`
	err := f.testDB.GetDB().GetContext(f.ctx, &tenant, query,
		o.Name, o.Timezone, o.MaxPlaysPerDay, o.ReplayDelayHours, o.RewardValidityDays, o.EnforceReplayCooldown, o.Status)
	require.NoError(f.t, err, "failed to create test tenant")
	return tenant
}

// --- Reward Fixtures ---

// RewardOpts customizes reward creation.
type RewardOpts struct {
	TenantID *uuid.UUID
	Label    string
	Weight   float64
	IsWin    bool
	Active   bool
	Position int
}

// DefaultRewardOpts returns sensible defaults for reward creation.
func DefaultRewardOpts() RewardOpts {
	return RewardOpts{
		Label:  "Free Coffee",
		Weight: 1,
		IsWin:  true,
		Active: true,
	}
}

// CreateReward creates a test reward. If no tenant is specified, a new one is created.
func (f *Fixtures) CreateReward(opts ...func(*RewardOpts)) Reward {
	f.t.Helper()
	o := DefaultRewardOpts()
	for _, fn := range opts {
		fn(&o)
	}

	if o.TenantID == nil {
		tenant := f.CreateTenant()
		o.TenantID = &tenant.ID
	}

	var reward Reward
	query := `
		INSERT INTO rewards (tenant_id, label, weight, is_win, active, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, tenant_id, label, weight, is_win, active, position, created_at, updated_at`
	err := f.testDB.GetDB().GetContext(f.ctx, &reward, query,
		*o.TenantID, o.Label, o.Weight, o.IsWin, o.Active, o.Position)
	require.NoError(f.t, err, "failed to create test reward")
	return reward
}

// --- Participation Fixtures ---

// ParticipationOpts customizes participation creation.
type ParticipationOpts struct {
	Tenant         *Tenant
	Reward         *Reward
	CustomerName   string
	CustomerEmail  *string
	PlatformAction PlatformAction
	CreatedAt      time.Time
}

// DefaultParticipationOpts returns sensible defaults for participation creation.
func DefaultParticipationOpts() ParticipationOpts {
	email := "customer-" + uuid.New().String()[:8] + "@example.com"
	return ParticipationOpts{
		CustomerName:   "Test Customer",
		CustomerEmail:  &email,
		PlatformAction: PlatformActionReviewA,
		CreatedAt:      time.Now().UTC(),
	}
}

// CreateParticipation records a play through the store with optional customization.
// Missing tenant and reward are created on the fly.
func (f *Fixtures) CreateParticipation(opts ...func(*ParticipationOpts)) Participation {
	f.t.Helper()
	participation, err := f.TryCreateParticipation(opts...)
	require.NoError(f.t, err, "failed to create test participation")
	return participation
}

// TryCreateParticipation is CreateParticipation without failing the test on error.
func (f *Fixtures) TryCreateParticipation(opts ...func(*ParticipationOpts)) (Participation, error) {
	f.t.Helper()
	o := DefaultParticipationOpts()
	for _, fn := range opts {
		fn(&o)
	}

	if o.Tenant == nil {
		tenant := f.CreateTenant()
		o.Tenant = &tenant
	}
	if o.Reward == nil {
		reward := f.CreateReward(func(r *RewardOpts) { r.TenantID = &o.Tenant.ID })
		o.Reward = &reward
	}

	return f.testDB.Store.CreateParticipation(f.ctx, NewTestParticipationParams(*o.Tenant, *o.Reward, o))
}

// NewTestParticipationParams builds store params the way the play flow does, in UTC.
func NewTestParticipationParams(tenant Tenant, reward Reward, o ParticipationOpts) CreateParticipationParams {
	createdAt := o.CreatedAt.UTC()
	dayStart := time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, time.UTC)
	validFrom := dayStart.AddDate(0, 0, 1)

	return CreateParticipationParams{
		TenantID:         tenant.ID,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		PlatformAction:   o.PlatformAction,
		RewardID:         reward.ID,
		Won:              reward.IsWin,
		RedemptionToken:  "tok_" + uuid.New().String(),
		CreatedAt:        createdAt,
		ValidFrom:        validFrom,
		ExpiresAt:        validFrom.AddDate(0, 0, tenant.RewardValidityDays),
		ReplayEligibleAt: createdAt.Add(time.Duration(tenant.ReplayDelayHours) * time.Hour),
		Guard: EligibilityGuard{
			DayStart:              dayStart,
			MaxPlaysPerDay:        tenant.MaxPlaysPerDay,
			EnforceReplayCooldown: tenant.EnforceReplayCooldown,
		},
	}
}

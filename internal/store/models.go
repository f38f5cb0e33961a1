package store

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents a venue using the wheel, with its play rules
type Tenant struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	Name                  string    `db:"name" json:"name"`
	Timezone              string    `db:"timezone" json:"timezone"`
	MaxPlaysPerDay        int       `db:"max_plays_per_day" json:"max_plays_per_day"`
	ReplayDelayHours      int       `db:"replay_delay_hours" json:"replay_delay_hours"`
	RewardValidityDays    int       `db:"reward_validity_days" json:"reward_validity_days"`
	EnforceReplayCooldown bool      `db:"enforce_replay_cooldown" json:"enforce_replay_cooldown"`
	Status                string    `db:"status" json:"status"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// Reward represents one prize (or consolation) segment of a tenant's wheel
type Reward struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Label     string    `db:"label" json:"label"`
	Weight    float64   `db:"weight" json:"weight"`
	IsWin     bool      `db:"is_win" json:"is_win"`
	Active    bool      `db:"active" json:"active"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Participation represents one play attempt and its redemption lifecycle
type Participation struct {
	ID               uuid.UUID           `db:"id" json:"id"`
	TenantID         uuid.UUID           `db:"tenant_id" json:"tenant_id"`
	CustomerName     string              `db:"customer_name" json:"customer_name"`
	CustomerEmail    *string             `db:"customer_email" json:"customer_email,omitempty"`
	PlatformAction   PlatformAction      `db:"platform_action" json:"platform_action"`
	RewardID         uuid.UUID           `db:"reward_id" json:"reward_id"`
	Won              bool                `db:"won" json:"won"`
	Status           ParticipationStatus `db:"status" json:"status"`
	RedemptionToken  string              `db:"redemption_token" json:"redemption_token"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
	ValidFrom        time.Time           `db:"valid_from" json:"valid_from"`
	ExpiresAt        time.Time           `db:"expires_at" json:"expires_at"`
	ReplayEligibleAt time.Time           `db:"replay_eligible_at" json:"replay_eligible_at"`
	VerifiedAt       *time.Time          `db:"verified_at" json:"verified_at,omitempty"`
	RedeemedAt       *time.Time          `db:"redeemed_at" json:"redeemed_at,omitempty"`
	UpdatedAt        time.Time           `db:"updated_at" json:"updated_at"`
}

// DailyAggregate holds the denormalized per-tenant, per-day counters
type DailyAggregate struct {
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Day       time.Time `db:"day" json:"day"`
	Plays     int       `db:"plays" json:"plays"`
	Wins      int       `db:"wins" json:"wins"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

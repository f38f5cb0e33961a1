package tenants

import (
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/calendar"
	"wheel-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrInvalidTenantConfig = errors.New("invalid tenant configuration")
)

// Config is the explicit per-tenant rule set passed into every engine call
type Config struct {
	TenantID              uuid.UUID `json:"tenant_id"`
	Name                  string    `json:"name"`
	Timezone              string    `json:"timezone"`
	MaxPlaysPerDay        int       `json:"max_plays_per_day"`
	ReplayDelayHours      int       `json:"replay_delay_hours"`
	RewardValidityDays    int       `json:"reward_validity_days"`
	EnforceReplayCooldown bool      `json:"enforce_replay_cooldown"`

	location *time.Location
}

// FromTenant builds a Config from the stored tenant row.
// An empty timezone falls back to defaultTimezone.
func FromTenant(t store.Tenant, defaultTimezone string) Config {
	tz := t.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	return Config{
		TenantID:              t.ID,
		Name:                  t.Name,
		Timezone:              tz,
		MaxPlaysPerDay:        t.MaxPlaysPerDay,
		ReplayDelayHours:      t.ReplayDelayHours,
		RewardValidityDays:    t.RewardValidityDays,
		EnforceReplayCooldown: t.EnforceReplayCooldown,
	}
}

// Validate checks the rule bounds and resolves the timezone.
// It must be called before Location.
func (c *Config) Validate() error {
	if c.MaxPlaysPerDay < 1 {
		return fmt.Errorf("%w: max plays per day must be at least 1, got %d", ErrInvalidTenantConfig, c.MaxPlaysPerDay)
	}
	if c.ReplayDelayHours < 0 {
		return fmt.Errorf("%w: replay delay hours must not be negative, got %d", ErrInvalidTenantConfig, c.ReplayDelayHours)
	}
	if c.RewardValidityDays < 1 {
		return fmt.Errorf("%w: reward validity days must be at least 1, got %d", ErrInvalidTenantConfig, c.RewardValidityDays)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("%w: unknown timezone %q: %w", ErrInvalidTenantConfig, c.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location returns the tenant's timezone, UTC when the config was never validated
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// LocalTime converts t into the tenant's calendar
func (c Config) LocalTime(t time.Time) time.Time {
	return t.In(c.Location())
}

// DayStart returns the first instant of the tenant day containing t
func (c Config) DayStart(t time.Time) time.Time {
	return calendar.DayStart(c.LocalTime(t))
}

// ReplayDelay is the configured cooldown as a duration
func (c Config) ReplayDelay() time.Duration {
	return time.Duration(c.ReplayDelayHours) * time.Hour
}

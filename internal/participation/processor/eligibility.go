package processor

import (
	"context"
	"fmt"
	"time"

	"wheel-server/internal/store"
	"wheel-server/internal/tenants"
)

// CheckEligibility runs the gate for an identified customer, stopping at the first rejection:
// an action may fund one play ever, plays since local midnight are capped, and when the
// tenant opts in the replay cooldown of the latest play must have elapsed.
// Anonymous plays never reach the gate.
func CheckEligibility(ctx context.Context, s EligibilityReader, cfg tenants.Config, email string, action store.PlatformAction, now time.Time) error {
	used, err := s.HasParticipationForAction(ctx, cfg.TenantID, email, action)
	if err != nil {
		return fmt.Errorf("failed to check action usage: %w", err)
	}
	if used {
		return ErrDuplicateAction
	}

	count, err := s.CountParticipationsSince(ctx, cfg.TenantID, email, cfg.DayStart(now))
	if err != nil {
		return fmt.Errorf("failed to count plays today: %w", err)
	}
	if count >= cfg.MaxPlaysPerDay {
		return &DailyLimitError{Limit: cfg.MaxPlaysPerDay}
	}

	if !cfg.EnforceReplayCooldown {
		return nil
	}
	latest, err := s.GetLatestReplayEligibleAt(ctx, cfg.TenantID, email)
	if err != nil {
		return fmt.Errorf("failed to read replay eligibility: %w", err)
	}
	if latest != nil && latest.After(now) {
		return &ReplayCooldownError{EligibleAt: *latest}
	}
	return nil
}

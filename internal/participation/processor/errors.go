package processor

import (
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/store"
	"wheel-server/internal/tenants"
)

var (
	ErrDuplicateAction        = errors.New("this action has already been used to play")
	ErrDailyLimitReached      = errors.New("daily play limit reached")
	ErrReplayCooldown         = errors.New("replay cooldown has not elapsed")
	ErrMisconfiguredRewardSet = errors.New("tenant reward set is misconfigured")
	ErrInvalidTransition      = errors.New("participation status does not allow this operation")
	ErrAlreadyRedeemed        = errors.New("participation already redeemed")
	ErrParticipationNotFound  = errors.New("participation not found")
	ErrForbidden              = errors.New("participation belongs to another tenant")
	ErrInvalidPlatformAction  = errors.New("invalid platform action")
	ErrInvalidCustomerName    = errors.New("customer name is required")
	ErrInvalidEmail           = errors.New("invalid customer email")

	// Shared with the collaborators so callers can match a single sentinel.
	ErrTenantNotFound      = tenants.ErrTenantNotFound
	ErrInvalidTenantConfig = tenants.ErrInvalidTenantConfig
	ErrStoreUnavailable    = store.ErrStoreUnavailable
)

// DailyLimitError is returned when the customer used all plays for the current tenant day
type DailyLimitError struct {
	Limit int
}

func (e *DailyLimitError) Error() string {
	if e.Limit == 1 {
		return "daily limit of 1 play reached"
	}
	return fmt.Sprintf("daily limit of %d plays reached", e.Limit)
}

func (e *DailyLimitError) Is(target error) bool {
	return target == ErrDailyLimitReached
}

// ReplayCooldownError is returned when a tenant enforces the cooldown and it has not elapsed.
// EligibleAt is zero when the instant could not be read back.
type ReplayCooldownError struct {
	EligibleAt time.Time
}

func (e *ReplayCooldownError) Error() string {
	if e.EligibleAt.IsZero() {
		return ErrReplayCooldown.Error()
	}
	return fmt.Sprintf("next play allowed after %s", e.EligibleAt.UTC().Format(time.RFC3339))
}

func (e *ReplayCooldownError) Is(target error) bool {
	return target == ErrReplayCooldown
}

// AlreadyRedeemedError carries the time of the one successful redemption
type AlreadyRedeemedError struct {
	RedeemedAt time.Time
}

func (e *AlreadyRedeemedError) Error() string {
	return fmt.Sprintf("participation already redeemed at %s", e.RedeemedAt.UTC().Format(time.RFC3339))
}

func (e *AlreadyRedeemedError) Is(target error) bool {
	return target == ErrAlreadyRedeemed
}

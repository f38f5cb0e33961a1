package apierrors

import (
	"errors"
	"time"

	participationProcessor "wheel-server/internal/participation/processor"
	statsProcessor "wheel-server/internal/stats/processor"
	"wheel-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// Every engine error kind maps to exactly one status and code; the generic
// internal error is reserved for errors nothing here recognises.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// Transient store failures first, they may wrap anything
	if errors.Is(err, store.ErrStoreUnavailable) {
		return ServiceUnavailable(CodeStoreUnavailable, "The service is temporarily unavailable. Please try again shortly.", err)
	}

	var limitErr *participationProcessor.DailyLimitError
	var cooldownErr *participationProcessor.ReplayCooldownError
	var redeemedErr *participationProcessor.AlreadyRedeemedError

	switch {
	// Input errors
	case errors.Is(err, participationProcessor.ErrInvalidPlatformAction):
		return BadRequest(CodeInvalidPlatformAction, "Unknown platform action")

	case errors.Is(err, participationProcessor.ErrInvalidCustomerName):
		return BadRequest(CodeInvalidInput, "Customer name is required")

	case errors.Is(err, participationProcessor.ErrInvalidEmail):
		return BadRequest(CodeInvalidEmail, "Email must be a valid email address")

	case errors.Is(err, statsProcessor.ErrInvalidDateRange):
		return BadRequest(CodeInvalidDateRange, "Invalid date range")

	case errors.Is(err, statsProcessor.ErrDayNotClosed):
		return BadRequest(CodeDayNotClosed, "Only days that have ended can be rebuilt")

	// Eligibility rejections
	case errors.Is(err, participationProcessor.ErrDuplicateAction):
		return Conflict(CodeDuplicateAction, "You have already played with this action")

	case errors.As(err, &limitErr):
		return TooManyRequests(CodeDailyLimitReached, limitErr.Error()).
			WithDetails(map[string]interface{}{"limit": limitErr.Limit})

	case errors.Is(err, participationProcessor.ErrDailyLimitReached):
		return TooManyRequests(CodeDailyLimitReached, "Daily play limit reached")

	case errors.As(err, &cooldownErr) && !cooldownErr.EligibleAt.IsZero():
		return TooManyRequests(CodeReplayCooldown, "Please wait before playing again").
			WithDetails(map[string]interface{}{"replay_eligible_at": cooldownErr.EligibleAt.UTC().Format(time.RFC3339)})

	case errors.Is(err, participationProcessor.ErrReplayCooldown):
		return TooManyRequests(CodeReplayCooldown, "Please wait before playing again")

	// Configuration
	case errors.Is(err, participationProcessor.ErrMisconfiguredRewardSet):
		return Conflict(CodeRewardSetMisconfigured, "This wheel has no rewards available right now")

	case errors.Is(err, participationProcessor.ErrInvalidTenantConfig):
		return Conflict(CodeTenantMisconfigured, "This venue is not configured to accept plays")

	// Lifecycle
	case errors.As(err, &redeemedErr):
		return Conflict(CodeAlreadyRedeemed, "This reward has already been redeemed").
			WithDetails(map[string]interface{}{"redeemed_at": redeemedErr.RedeemedAt.UTC().Format(time.RFC3339)})

	case errors.Is(err, participationProcessor.ErrAlreadyRedeemed):
		return Conflict(CodeAlreadyRedeemed, "This reward has already been redeemed")

	case errors.Is(err, participationProcessor.ErrInvalidTransition):
		return Conflict(CodeInvalidTransition, "This participation cannot be processed in its current state")

	// Lookup and access
	case errors.Is(err, participationProcessor.ErrTenantNotFound):
		return NotFound(CodeTenantNotFound, "Venue not found")

	case errors.Is(err, participationProcessor.ErrParticipationNotFound):
		return NotFound(CodeParticipationNotFound, "Participation not found")

	case errors.Is(err, participationProcessor.ErrForbidden):
		return Forbidden("You do not have access to this participation")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")
	}

	return InternalError(err)
}

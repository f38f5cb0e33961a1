package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateToken is returned when a generated redemption token collides with an existing one
var ErrDuplicateToken = errors.New("redemption token already exists")

const participationTokenIndex = "uq_participations_redemption_token"

const participationColumns = `id, tenant_id, customer_name, customer_email, platform_action, reward_id, won, status,
       redemption_token, created_at, valid_from, expires_at, replay_eligible_at, verified_at, redeemed_at, updated_at`

// EligibilityGuard carries the tenant rules re-checked inside the play transaction
type EligibilityGuard struct {
	DayStart              time.Time
	MaxPlaysPerDay        int
	EnforceReplayCooldown bool
}

// CreateParticipationParams represents parameters for recording a play
type CreateParticipationParams struct {
	TenantID         uuid.UUID
	CustomerName     string
	CustomerEmail    *string
	PlatformAction   PlatformAction
	RewardID         uuid.UUID
	Won              bool
	RedemptionToken  string
	CreatedAt        time.Time
	ValidFrom        time.Time
	ExpiresAt        time.Time
	ReplayEligibleAt time.Time
	Guard            EligibilityGuard
}

const sqlHasParticipationForAction = `
SELECT EXISTS (
    SELECT 1 FROM participations
    WHERE tenant_id = $1 AND customer_email = $2 AND platform_action = $3
)
`

// HasParticipationForAction reports whether the customer already used this action at the tenant
func (s *Store) HasParticipationForAction(ctx context.Context, tenantID uuid.UUID, email string, action PlatformAction) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	exists, err := hasParticipationForAction(ctx, s.db, tenantID, email, action)
	if err != nil {
		return false, wrapErr(err, "failed to check participation for action")
	}
	return exists, nil
}

func hasParticipationForAction(ctx context.Context, q sqlx.QueryerContext, tenantID uuid.UUID, email string, action PlatformAction) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, sqlHasParticipationForAction, tenantID, email, action)
	return exists, err
}

const sqlCountParticipationsSince = `
SELECT COUNT(*) FROM participations
WHERE tenant_id = $1 AND customer_email = $2 AND created_at >= $3
`

// CountParticipationsSince counts the customer's plays at the tenant created at or after since
func (s *Store) CountParticipationsSince(ctx context.Context, tenantID uuid.UUID, email string, since time.Time) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	count, err := countParticipationsSince(ctx, s.db, tenantID, email, since)
	if err != nil {
		return 0, wrapErr(err, "failed to count participations")
	}
	return count, nil
}

func countParticipationsSince(ctx context.Context, q sqlx.QueryerContext, tenantID uuid.UUID, email string, since time.Time) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q, &count, sqlCountParticipationsSince, tenantID, email, since)
	return count, err
}

const sqlGetLatestReplayEligibleAt = `
SELECT MAX(replay_eligible_at) FROM participations
WHERE tenant_id = $1 AND customer_email = $2
`

// GetLatestReplayEligibleAt returns the furthest replay instant recorded for the customer,
// or nil when the customer never played at the tenant
func (s *Store) GetLatestReplayEligibleAt(ctx context.Context, tenantID uuid.UUID, email string) (*time.Time, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	latest, err := getLatestReplayEligibleAt(ctx, s.db, tenantID, email)
	if err != nil {
		return nil, wrapErr(err, "failed to get latest replay eligibility")
	}
	return latest, nil
}

func getLatestReplayEligibleAt(ctx context.Context, q sqlx.QueryerContext, tenantID uuid.UUID, email string) (*time.Time, error) {
	var latest sql.NullTime
	if err := sqlx.GetContext(ctx, q, &latest, sqlGetLatestReplayEligibleAt, tenantID, email); err != nil {
		return nil, err
	}
	if !latest.Valid {
		return nil, nil
	}
	return &latest.Time, nil
}

const sqlLockCustomer = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

const sqlCreateParticipation = `
INSERT INTO participations (tenant_id, customer_name, customer_email, platform_action, reward_id, won, status,
                            redemption_token, created_at, valid_from, expires_at, replay_eligible_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $9)
RETURNING ` + participationColumns

// CreateParticipation records a play and increments the tenant's daily aggregate in one transaction.
// For identified customers the eligibility rules are re-checked under a per-customer advisory lock,
// so concurrent plays by the same customer cannot overshoot the daily cap.
func (s *Store) CreateParticipation(ctx context.Context, params CreateParticipationParams) (Participation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var participation Participation
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if params.CustomerEmail != nil {
			if err := guardEligibility(ctx, tx, params); err != nil {
				return err
			}
		}

		err := tx.GetContext(ctx, &participation, sqlCreateParticipation,
			params.TenantID,
			params.CustomerName,
			params.CustomerEmail,
			params.PlatformAction,
			params.RewardID,
			params.Won,
			ParticipationStatusPending,
			params.RedemptionToken,
			params.CreatedAt,
			params.ValidFrom,
			params.ExpiresAt,
			params.ReplayEligibleAt)
		if err != nil {
			switch {
			case isUniqueViolation(err, participationActionIndex):
				return ErrDuplicateAction
			case isUniqueViolation(err, participationTokenIndex):
				return ErrDuplicateToken
			}
			return wrapErr(err, "failed to create participation")
		}

		return incrementDailyAggregate(ctx, tx, params.TenantID, dayString(params.Guard.DayStart), params.Won)
	})
	if err != nil {
		return Participation{}, err
	}
	return participation, nil
}

func guardEligibility(ctx context.Context, tx *sqlx.Tx, params CreateParticipationParams) error {
	email := *params.CustomerEmail
	lockKey := fmt.Sprintf("%s:%s", params.TenantID, email)
	if _, err := tx.ExecContext(ctx, sqlLockCustomer, lockKey); err != nil {
		return wrapErr(err, "failed to lock customer")
	}

	exists, err := hasParticipationForAction(ctx, tx, params.TenantID, email, params.PlatformAction)
	if err != nil {
		return wrapErr(err, "failed to check participation for action")
	}
	if exists {
		return ErrDuplicateAction
	}

	count, err := countParticipationsSince(ctx, tx, params.TenantID, email, params.Guard.DayStart)
	if err != nil {
		return wrapErr(err, "failed to count participations")
	}
	if count >= params.Guard.MaxPlaysPerDay {
		return ErrDailyLimitReached
	}

	if params.Guard.EnforceReplayCooldown {
		latest, err := getLatestReplayEligibleAt(ctx, tx, params.TenantID, email)
		if err != nil {
			return wrapErr(err, "failed to get latest replay eligibility")
		}
		if latest != nil && latest.After(params.CreatedAt) {
			return ErrReplayCooldown
		}
	}
	return nil
}

const sqlGetParticipationByID = `
SELECT ` + participationColumns + `
FROM participations
WHERE id = $1
`

// GetParticipationByID retrieves a participation by ID
func (s *Store) GetParticipationByID(ctx context.Context, participationID uuid.UUID) (Participation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.getParticipationByID(ctx, participationID)
}

func (s *Store) getParticipationByID(ctx context.Context, participationID uuid.UUID) (Participation, error) {
	var participation Participation
	err := s.db.GetContext(ctx, &participation, sqlGetParticipationByID, participationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participation{}, ErrNotFound
		}
		return Participation{}, wrapErr(err, "failed to get participation by id")
	}
	return participation, nil
}

const sqlGetParticipationByToken = `
SELECT ` + participationColumns + `
FROM participations
WHERE redemption_token = $1
`

// GetParticipationByToken retrieves a participation by its redemption token
func (s *Store) GetParticipationByToken(ctx context.Context, token string) (Participation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var participation Participation
	err := s.db.GetContext(ctx, &participation, sqlGetParticipationByToken, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participation{}, ErrNotFound
		}
		return Participation{}, wrapErr(err, "failed to get participation by token")
	}
	return participation, nil
}

const sqlVerifyParticipation = `
UPDATE participations
SET status = $2, verified_at = $3, updated_at = $3
WHERE id = $1 AND status = $4
RETURNING ` + participationColumns

// VerifyParticipation moves a pending participation to verified.
// When the row is not pending, ErrStatusConflict is returned together with the current row.
func (s *Store) VerifyParticipation(ctx context.Context, participationID uuid.UUID, verifiedAt time.Time) (Participation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var participation Participation
	err := s.db.GetContext(ctx, &participation, sqlVerifyParticipation,
		participationID,
		ParticipationStatusVerified,
		verifiedAt,
		ParticipationStatusPending)
	if err == nil {
		return participation, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Participation{}, wrapErr(err, "failed to verify participation")
	}

	current, err := s.getParticipationByID(ctx, participationID)
	if err != nil {
		return Participation{}, err
	}
	return current, ErrStatusConflict
}

const sqlRedeemParticipation = `
UPDATE participations
SET status = $2, redeemed_at = $3, updated_at = $3
WHERE id = $1 AND status <> $2 AND won = TRUE
RETURNING ` + participationColumns

// RedeemParticipation marks a winning participation as redeemed exactly once.
// The transition is a single conditional update; when no row changes the current row is
// re-read and returned with ErrAlreadyRedeemed, ErrNotRedeemable or ErrNotFound.
func (s *Store) RedeemParticipation(ctx context.Context, participationID uuid.UUID, redeemedAt time.Time) (Participation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var participation Participation
	err := s.db.GetContext(ctx, &participation, sqlRedeemParticipation,
		participationID,
		ParticipationStatusRedeemed,
		redeemedAt)
	if err == nil {
		return participation, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Participation{}, wrapErr(err, "failed to redeem participation")
	}

	current, err := s.getParticipationByID(ctx, participationID)
	if err != nil {
		return Participation{}, err
	}
	if current.Status == ParticipationStatusRedeemed {
		return current, ErrAlreadyRedeemed
	}
	return current, ErrNotRedeemable
}

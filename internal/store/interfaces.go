package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	GetDB() *sqlx.DB
	Ping(ctx context.Context) error

	// Tenant operations
	GetTenantByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error)
	ListActiveTenants(ctx context.Context) ([]Tenant, error)

	// Reward operations
	GetActiveRewardsByTenant(ctx context.Context, tenantID uuid.UUID) ([]Reward, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (Reward, error)

	// Participation operations
	HasParticipationForAction(ctx context.Context, tenantID uuid.UUID, email string, action PlatformAction) (bool, error)
	CountParticipationsSince(ctx context.Context, tenantID uuid.UUID, email string, since time.Time) (int, error)
	GetLatestReplayEligibleAt(ctx context.Context, tenantID uuid.UUID, email string) (*time.Time, error)
	CreateParticipation(ctx context.Context, params CreateParticipationParams) (Participation, error)
	GetParticipationByID(ctx context.Context, participationID uuid.UUID) (Participation, error)
	GetParticipationByToken(ctx context.Context, token string) (Participation, error)
	VerifyParticipation(ctx context.Context, participationID uuid.UUID, verifiedAt time.Time) (Participation, error)
	RedeemParticipation(ctx context.Context, participationID uuid.UUID, redeemedAt time.Time) (Participation, error)

	// Daily aggregate operations
	GetDailyAggregates(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]DailyAggregate, error)
	RebuildDailyAggregate(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (DailyAggregate, error)
}

var _ Storer = (*Store)(nil)

package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"wheel-server/internal/store"
	"wheel-server/internal/tenants"

	"github.com/google/uuid"
)

// EligibilityReader defines the ledger reads the eligibility gate runs before drawing
type EligibilityReader interface {
	HasParticipationForAction(ctx context.Context, tenantID uuid.UUID, email string, action store.PlatformAction) (bool, error)
	CountParticipationsSince(ctx context.Context, tenantID uuid.UUID, email string, since time.Time) (int, error)
	GetLatestReplayEligibleAt(ctx context.Context, tenantID uuid.UUID, email string) (*time.Time, error)
}

// ParticipationStore defines the database operations required by ParticipationProcessor
type ParticipationStore interface {
	EligibilityReader
	GetActiveRewardsByTenant(ctx context.Context, tenantID uuid.UUID) ([]store.Reward, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (store.Reward, error)
	CreateParticipation(ctx context.Context, params store.CreateParticipationParams) (store.Participation, error)
	GetParticipationByID(ctx context.Context, participationID uuid.UUID) (store.Participation, error)
	GetParticipationByToken(ctx context.Context, token string) (store.Participation, error)
	VerifyParticipation(ctx context.Context, participationID uuid.UUID, verifiedAt time.Time) (store.Participation, error)
	RedeemParticipation(ctx context.Context, participationID uuid.UUID, redeemedAt time.Time) (store.Participation, error)
}

// TenantProvider resolves the explicit rule set of a tenant
type TenantProvider interface {
	Get(ctx context.Context, tenantID uuid.UUID) (tenants.Config, error)
}

// EventPublisher announces ledger changes to external collaborators.
// Publishing is best-effort and never fails the operation.
type EventPublisher interface {
	PublishPlayed(ctx context.Context, participation store.Participation)
	PublishVerified(ctx context.Context, participation store.Participation)
	PublishRedeemed(ctx context.Context, participation store.Participation)
}

// TokenGenerator produces unguessable redemption tokens
type TokenGenerator interface {
	Generate() (string, error)
}

package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"wheel-server/internal/participation/processor"
	"wheel-server/internal/store"
	"wheel-server/internal/wheelsync"

	"github.com/google/uuid"
)

// ParticipationService is the engine surface exposed over HTTP
type ParticipationService interface {
	GetWheel(ctx context.Context, tenantID uuid.UUID) (wheelsync.Wheel, error)
	Play(ctx context.Context, tenantID uuid.UUID, req processor.PlayRequest) (processor.PlayResult, error)
	GetByToken(ctx context.Context, token string) (processor.ParticipationDetails, error)
	Verify(ctx context.Context, participationID, staffTenantID uuid.UUID) (store.Participation, error)
	RedeemByToken(ctx context.Context, token string) (store.Participation, error)
	RedeemByID(ctx context.Context, staffTenantID, participationID uuid.UUID) (store.Participation, error)
}

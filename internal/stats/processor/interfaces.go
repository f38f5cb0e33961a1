package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"wheel-server/internal/store"
	"wheel-server/internal/tenants"

	"github.com/google/uuid"
)

// StatsStore defines the database operations required by StatsProcessor
type StatsStore interface {
	ListActiveTenants(ctx context.Context) ([]store.Tenant, error)
	GetDailyAggregates(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]store.DailyAggregate, error)
	RebuildDailyAggregate(ctx context.Context, tenantID uuid.UUID, dayStart time.Time) (store.DailyAggregate, error)
}

// TenantProvider resolves the calendar and rules of a tenant
type TenantProvider interface {
	Get(ctx context.Context, tenantID uuid.UUID) (tenants.Config, error)
}

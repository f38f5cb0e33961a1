package tenants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/clients/redis"
	"wheel-server/internal/observability"
	"wheel-server/internal/store"

	"github.com/google/uuid"
)

const cacheKeyPrefix = "tenant-config:"

// Store is the tenant lookup the provider falls back to on cache misses
type Store interface {
	GetTenantByID(ctx context.Context, tenantID uuid.UUID) (store.Tenant, error)
}

// Cache is the subset of the Redis client used for tenant configs
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
}

// Provider resolves validated tenant configurations, read-through cached in Redis.
// A nil or disabled cache makes every lookup hit the store.
type Provider struct {
	store           Store
	cache           Cache
	ttl             time.Duration
	defaultTimezone string
	logger          *observability.Logger
}

func NewProvider(s Store, cache Cache, ttl time.Duration, defaultTimezone string, logger *observability.Logger) *Provider {
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	return &Provider{
		store:           s,
		cache:           cache,
		ttl:             ttl,
		defaultTimezone: defaultTimezone,
		logger:          logger,
	}
}

// Get returns the validated configuration of an active tenant
func (p *Provider) Get(ctx context.Context, tenantID uuid.UUID) (Config, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tenant_id", Value: tenantID})

	if cfg, ok := p.fromCache(ctx, tenantID); ok {
		return cfg, nil
	}

	tenant, err := p.store.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Config{}, ErrTenantNotFound
		}
		p.logger.Error(ctx, "failed to get tenant", err)
		return Config{}, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tenant.Status != store.TenantStatusActive {
		return Config{}, ErrTenantNotFound
	}

	cfg := FromTenant(tenant, p.defaultTimezone)
	if err := cfg.Validate(); err != nil {
		p.logger.Error(ctx, "tenant configuration rejected", err)
		return Config{}, err
	}

	p.toCache(ctx, cfg)
	return cfg, nil
}

func (p *Provider) fromCache(ctx context.Context, tenantID uuid.UUID) (Config, bool) {
	if !p.cacheEnabled() {
		return Config{}, false
	}

	raw, err := p.cache.Get(ctx, cacheKeyPrefix+tenantID.String())
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			p.logger.WarnWithError(ctx, "tenant cache read failed, falling back to database", err)
		}
		return Config{}, false
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		p.logger.WarnWithError(ctx, "failed to decode cached tenant config", err)
		return Config{}, false
	}
	if err := cfg.Validate(); err != nil {
		p.logger.WarnWithError(ctx, "cached tenant config is invalid", err)
		return Config{}, false
	}
	return cfg, true
}

func (p *Provider) toCache(ctx context.Context, cfg Config) {
	if !p.cacheEnabled() {
		return
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to encode tenant config", err)
		return
	}
	if err := p.cache.Set(ctx, cacheKeyPrefix+cfg.TenantID.String(), raw, p.ttl); err != nil {
		p.logger.WarnWithError(ctx, "failed to cache tenant config", err)
	}
}

func (p *Provider) cacheEnabled() bool {
	if p.cache == nil || p.ttl <= 0 {
		return false
	}
	if c, ok := p.cache.(*redis.Client); ok {
		return c.Enabled()
	}
	return true
}

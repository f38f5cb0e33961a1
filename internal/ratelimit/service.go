package ratelimit

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"time"

	"wheel-server/internal/observability"

	"github.com/google/uuid"
)

// WindowStore keeps one sorted set of hit timestamps per key
type WindowStore interface {
	Enabled() bool
	TrimWindow(ctx context.Context, key string, windowStart time.Time) (int64, error)
	OldestInWindow(ctx context.Context, key string) (time.Time, error)
	RecordHit(ctx context.Context, key, member string, at time.Time, ttl time.Duration) error
}

// Result describes the outcome of a single rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Service is a sliding window limiter over a WindowStore
type Service struct {
	store  WindowStore
	limit  int
	window time.Duration
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a limiter allowing limit hits per window for each key.
// A non-positive limit disables limiting.
func NewService(store WindowStore, limit int, window time.Duration, logger *observability.Logger) *Service {
	return &Service{
		store:  store,
		limit:  limit,
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

// Active reports whether checks can be enforced
func (s *Service) Active() bool {
	return s != nil && s.limit > 0 && s.store != nil && s.store.Enabled()
}

// Check records a hit for key unless the window is already full.
// Store failures allow the request.
func (s *Service) Check(ctx context.Context, key string) (Result, error) {
	now := s.now()
	if !s.Active() {
		return Result{Allowed: true, Limit: s.limitOrZero(), ResetAt: now}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	redisKey := fmt.Sprintf("rl:%s", key)
	count, err := s.store.TrimWindow(ctx, redisKey, now.Add(-s.window))
	if err != nil {
		return Result{Allowed: true, Limit: s.limit, ResetAt: now}, fmt.Errorf("failed to count hits: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(s.window)
		oldest, err := s.store.OldestInWindow(ctx, redisKey)
		if err == nil {
			resetAt = oldest.Add(s.window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}, nil
	}

	if err := s.store.RecordHit(ctx, redisKey, uuid.NewString(), now, 2*s.window); err != nil {
		s.logger.WarnWithError(ctx, "failed to record rate limit hit", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(s.window),
	}, nil
}

func (s *Service) limitOrZero() int {
	if s == nil {
		return 0
	}
	return s.limit
}

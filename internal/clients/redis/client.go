package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/config"
	"wheel-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrCacheMiss is returned by Get when the key does not exist
	ErrCacheMiss = errors.New("cache miss")
	// ErrNotInitialized is returned when Redis is disabled
	ErrNotInitialized = errors.New("redis client not initialized")
)

// Client wraps the Redis client with observability.
// A nil *Client is valid and behaves as a disabled cache.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client, or nil when Redis is disabled
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return NewFromClient(client, logger), nil
}

// NewFromClient wraps an existing go-redis client
func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{
		client: client,
		logger: logger,
	}
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Enabled reports whether the client is backed by a Redis connection
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// Get returns the raw value stored at key, or ErrCacheMiss
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrNotInitialized
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return val, err
}

// Set stores value at key with the given expiration
func (c *Client) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	if !c.Enabled() {
		return ErrNotInitialized
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Del removes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.Enabled() {
		return ErrNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// TrimWindow drops sorted set members scored before windowStart and returns
// how many remain
func (c *Client) TrimWindow(ctx context.Context, key string, windowStart time.Time) (int64, error) {
	if !c.Enabled() {
		return 0, ErrNotInitialized
	}
	pipe := c.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", fmt.Sprintf("(%d", windowStart.UnixMilli()))
	card := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return card.Val(), nil
}

// OldestInWindow returns the time of the earliest hit recorded at key
func (c *Client) OldestInWindow(ctx context.Context, key string) (time.Time, error) {
	if !c.Enabled() {
		return time.Time{}, ErrNotInitialized
	}
	oldest, err := c.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return time.Time{}, err
	}
	if len(oldest) == 0 {
		return time.Time{}, ErrCacheMiss
	}
	return time.UnixMilli(int64(oldest[0].Score)), nil
}

// RecordHit adds a uniquely named member scored at the given time and
// refreshes the key expiry
func (c *Client) RecordHit(ctx context.Context, key, member string, at time.Time, ttl time.Duration) error {
	if !c.Enabled() {
		return ErrNotInitialized
	}
	pipe := c.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(at.UnixMilli()), Member: member})
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

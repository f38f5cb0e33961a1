package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Jobs      JobsConfig
	Engine    EngineConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds the secret used to validate staff tenant tokens
type AuthConfig struct {
	JWTSecret string
}

// RedisConfig holds Redis connection settings for the tenant config cache
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration.
// Publishing is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// JobsConfig holds the asynq worker configuration
type JobsConfig struct {
	RedisAddr         string
	Concurrency       int
	ReconcileCronSpec string
}

// EngineConfig holds participation engine tuning
type EngineConfig struct {
	StoreTimeout    time.Duration
	TenantCacheTTL  time.Duration
	DefaultTimezone string
}

// RateLimitConfig bounds play submissions per client IP and tenant.
// Zero disables the limiter.
type RateLimitConfig struct {
	PlaysPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int
	WebAppURI       string
	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Redis configuration
	if cfg.Redis.Enabled, err = parseBool("REDIS_ENABLED", "false"); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = parseInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = parseInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Kafka configuration
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "participation-events")

	// Jobs configuration
	cfg.Jobs.RedisAddr = getEnvWithDefault("JOBS_REDIS_ADDR", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port))
	if cfg.Jobs.Concurrency, err = parseInt("JOBS_CONCURRENCY", "5"); err != nil {
		return nil, err
	}
	cfg.Jobs.ReconcileCronSpec = getEnvWithDefault("RECONCILE_CRON", "30 3 * * *")

	// Engine configuration
	storeTimeoutMs, err := parseInt("STORE_TIMEOUT_MS", "3000")
	if err != nil {
		return nil, err
	}
	if storeTimeoutMs <= 0 {
		return nil, fmt.Errorf("STORE_TIMEOUT_MS must be positive, got %d", storeTimeoutMs)
	}
	cfg.Engine.StoreTimeout = time.Duration(storeTimeoutMs) * time.Millisecond

	cacheTTLSeconds, err := parseInt("TENANT_CACHE_TTL_SECONDS", "30")
	if err != nil {
		return nil, err
	}
	cfg.Engine.TenantCacheTTL = time.Duration(cacheTTLSeconds) * time.Second

	cfg.Engine.DefaultTimezone = getEnvWithDefault("DEFAULT_TIMEZONE", "UTC")
	if _, err := time.LoadLocation(cfg.Engine.DefaultTimezone); err != nil {
		return nil, fmt.Errorf("failed to parse DEFAULT_TIMEZONE: %w", err)
	}

	if cfg.RateLimit.PlaysPerMinute, err = parseInt("PLAY_RATE_LIMIT_PER_MINUTE", "20"); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = parseInt("SERVER_PORT", "8080"); err != nil {
		return nil, err
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Server.TrustedProxies = splitList(os.Getenv("TRUSTED_PROXIES"))
	shutdownSeconds, err := parseInt("SHUTDOWN_TIMEOUT_SECONDS", "5")
	if err != nil {
		return nil, err
	}
	cfg.Server.ShutdownTimeout = time.Duration(shutdownSeconds) * time.Second

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// KafkaBrokerList splits the comma separated broker list, dropping blanks.
func (c *KafkaConfig) KafkaBrokerList() []string {
	return splitList(c.Brokers)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func parseBool(key, defaultValue string) (bool, error) {
	v, err := strconv.ParseBool(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"wheel-server/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrDuplicateAction   = errors.New("participation already exists for this action")
	ErrDailyLimitReached = errors.New("daily play limit reached")
	ErrReplayCooldown    = errors.New("replay cooldown has not elapsed")
	ErrAlreadyRedeemed   = errors.New("participation already redeemed")
	ErrStatusConflict    = errors.New("participation status does not allow this transition")
	ErrNotRedeemable     = errors.New("participation has no winning reward to redeem")
)

const (
	pgUniqueViolation        = "23505"
	pgSerializationFailure   = "40001"
	pgDeadlockDetected       = "40P01"
	participationActionIndex = "uq_participations_tenant_email_action"
	defaultStoreTimeout      = 3 * time.Second
)

type Store struct {
	db      *sqlx.DB
	logger  *observability.Logger
	timeout time.Duration
}

func New(connectionString string, timeout time.Duration, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return Store{db: db, logger: logger, timeout: timeout}, nil
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// Ping verifies the database is reachable within the store timeout
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		return wrapErr(err, "failed to ping database")
	}
	return nil
}

// Close closes the connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.timeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// withTx runs fn inside a transaction, committing when fn returns nil.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapErr(err, "failed to begin transaction")
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.WarnWithError(ctx, "failed to rollback transaction", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapErr(err, "failed to commit transaction")
	}
	return nil
}

// wrapErr annotates err and tags transient failures with ErrStoreUnavailable
// so callers can tell them apart from permanent ones.
func wrapErr(err error, msg string) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %w", msg, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgSerializationFailure, pgErr.Code == pgDeadlockDetected:
			return true
		// connection exceptions, insufficient resources, operator intervention
		case strings.HasPrefix(pgErr.Code, "08"),
			strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57P"):
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
}

// dayString renders the calendar date of t in its own location for DATE columns.
func dayString(t time.Time) string {
	return t.Format("2006-01-02")
}

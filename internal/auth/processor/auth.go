package processor

import (
	"errors"
	"time"

	"wheel-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "wheel-server"
	tokenAudience = "wheel-staff"

	defaultStaffTokenTTL = 12 * time.Hour
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrMissingTenant   = errors.New("token has no tenant")
	ErrFailedSignToken = errors.New("failed to sign token")
)

// AuthProcessor issues and validates staff tokens. A staff token scopes its holder
// to exactly one tenant.
type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// StaffClaims are the claims carried by a staff token
type StaffClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	TenantID       string           `json:"tenant_id"`
}

// StaffIdentity is the validated result of a staff token
type StaffIdentity struct {
	StaffID  string
	TenantID uuid.UUID
}

package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wheel-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueStaffToken signs a token for a staff member of one tenant.
// A non-positive ttl uses the default lifetime.
func (p *AuthProcessor) IssueStaffToken(ctx context.Context, staffID string, tenantID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultStaffTokenTTL
	}
	now := p.now()

	claims := &StaffClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         tokenIssuer,
		Subject:        staffID,
		Audience:       jwt.ClaimStrings{tokenAudience},
		TenantID:       tenantID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}

	return tokenString, nil
}

func (c *StaffClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return c.ExpirationTime, nil
}

func (c *StaffClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return c.IssuedAt, nil
}

func (c *StaffClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return c.NotBefore, nil
}

func (c *StaffClaims) GetIssuer() (string, error) {
	return c.Issuer, nil
}

func (c *StaffClaims) GetSubject() (string, error) {
	return c.Subject, nil
}

func (c *StaffClaims) GetAudience() (jwt.ClaimStrings, error) {
	return c.Audience, nil
}

// ValidateStaffToken verifies signature, expiry, issuer and audience, and resolves the tenant
func (p *AuthProcessor) ValidateStaffToken(ctx context.Context, token string) (StaffIdentity, error) {
	var claims StaffClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		// Check the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.InfoWithError(ctx, "token expired", err)
			return StaffIdentity{}, ErrExpiredToken
		}

		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return StaffIdentity{}, ErrParseJWTToken
	}
	if !t.Valid {
		return StaffIdentity{}, ErrInvalidJWTToken
	}

	if claims.TenantID == "" {
		return StaffIdentity{}, ErrMissingTenant
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "tenant_id", Value: claims.TenantID})
		p.logger.InfoWithError(ctx, "token carries a malformed tenant id", err)
		return StaffIdentity{}, ErrInvalidJWTToken
	}

	return StaffIdentity{StaffID: claims.Subject, TenantID: tenantID}, nil
}

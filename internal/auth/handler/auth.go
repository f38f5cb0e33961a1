package handler

import (
	"context"
	"errors"
	"strings"

	"wheel-server/internal/apierrors"
	"wheel-server/internal/auth/processor"
	"wheel-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the staff middleware
const (
	TenantIDKey = "Tenant-ID"
	StaffIDKey  = "Staff-ID"
)

// TokenValidator validates staff bearer tokens
type TokenValidator interface {
	ValidateStaffToken(ctx context.Context, token string) (processor.StaffIdentity, error)
}

type Handler struct {
	authProcessor TokenValidator
	logger        *observability.Logger
}

func New(authProcessor TokenValidator, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleStaffJWTMiddleware authenticates staff requests and scopes them to the token's tenant
func (h *Handler) HandleStaffJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	// Extract the JWT token from the header
	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	identity, err := h.authProcessor.ValidateStaffToken(ctx, tokenString)
	if err != nil {
		message := "Authorization token is invalid"
		if errors.Is(err, processor.ErrExpiredToken) {
			message = "Authorization token has expired"
		}
		apierrors.RespondWithError(c, apierrors.Unauthorized(message))
		return
	}

	c.Set(TenantIDKey, identity.TenantID.String())
	c.Set(StaffIDKey, identity.StaffID)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "staff_tenant_id", Value: identity.TenantID},
		observability.Field{Key: "staff_id", Value: identity.StaffID},
	)
	c.Request = c.Request.WithContext(ctx)

	// Continue to the next handler if the token is valid
	c.Next()
}

// StaffTenantID returns the tenant the authenticated staff member belongs to
func StaffTenantID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(TenantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	tenantID, err := uuid.Parse(value.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return tenantID, true
}

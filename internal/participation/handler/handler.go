package handler

import (
	"net/http"

	"wheel-server/internal/apierrors"
	authHandler "wheel-server/internal/auth/handler"
	"wheel-server/internal/observability"
	"wheel-server/internal/participation/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor ParticipationService
	logger    *observability.Logger
}

func New(processor ParticipationService, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// PlayRequest represents the HTTP request for one spin
type PlayRequest struct {
	CustomerName   string `json:"customer_name" binding:"required,max=255"`
	CustomerEmail  string `json:"customer_email" binding:"omitempty,email,max=320"`
	PlatformAction string `json:"platform_action" binding:"required"`
}

// HandleGetWheel handles GET /api/v1/tenants/:tenant_id/wheel
func (h *Handler) HandleGetWheel(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID, ok := parseUUIDParam(c, "tenant_id")
	if !ok {
		return
	}

	wheel, err := h.processor.GetWheel(ctx, tenantID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, wheel)
}

// HandlePlay handles POST /api/v1/tenants/:tenant_id/plays
func (h *Handler) HandlePlay(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID, ok := parseUUIDParam(c, "tenant_id")
	if !ok {
		return
	}

	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Play(ctx, tenantID, processor.PlayRequest{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		PlatformAction: req.PlatformAction,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPlayResponse(result))
}

// HandleGetParticipation handles GET /api/v1/participations/:token
func (h *Handler) HandleGetParticipation(c *gin.Context) {
	ctx := c.Request.Context()

	details, err := h.processor.GetByToken(ctx, c.Param("token"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toParticipationResponse(details.Participation, &details.Reward))
}

// HandleRedeemByToken handles POST /api/v1/redeem/:token
func (h *Handler) HandleRedeemByToken(c *gin.Context) {
	ctx := c.Request.Context()

	participation, err := h.processor.RedeemByToken(ctx, c.Param("token"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toParticipationResponse(participation, nil))
}

// HandleVerify handles POST /api/v1/staff/participations/:participation_id/verify
func (h *Handler) HandleVerify(c *gin.Context) {
	ctx := c.Request.Context()

	staffTenantID, ok := authHandler.StaffTenantID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("tenant not found in context"))
		return
	}

	participationID, ok := parseUUIDParam(c, "participation_id")
	if !ok {
		return
	}

	participation, err := h.processor.Verify(ctx, participationID, staffTenantID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toParticipationResponse(participation, nil))
}

// HandleStaffRedeem handles POST /api/v1/staff/participations/:participation_id/redeem
func (h *Handler) HandleStaffRedeem(c *gin.Context) {
	ctx := c.Request.Context()

	staffTenantID, ok := authHandler.StaffTenantID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("tenant not found in context"))
		return
	}

	participationID, ok := parseUUIDParam(c, "participation_id")
	if !ok {
		return
	}

	participation, err := h.processor.RedeemByID(ctx, staffTenantID, participationID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toParticipationResponse(participation, nil))
}

// parseUUIDParam responds with 400 and returns false when the path parameter is not a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

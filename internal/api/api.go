package api

import (
	"context"
	"net/http"
	"time"

	authHandler "wheel-server/internal/auth/handler"
	participationHandler "wheel-server/internal/participation/handler"
	statsHandler "wheel-server/internal/stats/handler"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	router               *gin.RouterGroup
	db                   Pinger
	authHandler          authHandler.Handler
	participationHandler participationHandler.Handler
	statsHandler         statsHandler.Handler
	playLimiter          gin.HandlerFunc
}

func New(
	router *gin.RouterGroup,
	db Pinger,
	authHandler authHandler.Handler,
	participationHandler participationHandler.Handler,
	statsHandler statsHandler.Handler,
	playLimiter gin.HandlerFunc,
) API {
	if playLimiter == nil {
		playLimiter = func(c *gin.Context) { c.Next() }
	}
	return API{
		router:               router,
		db:                   db,
		authHandler:          authHandler,
		participationHandler: participationHandler,
		statsHandler:         statsHandler,
		playLimiter:          playLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api/v1")
	{
		// Customer facing, unauthenticated
		apiGroup.GET("/tenants/:tenant_id/wheel", a.participationHandler.HandleGetWheel)
		apiGroup.POST("/tenants/:tenant_id/plays", a.playLimiter, a.participationHandler.HandlePlay)
		apiGroup.GET("/participations/:token", a.participationHandler.HandleGetParticipation)
		apiGroup.POST("/redeem/:token", a.participationHandler.HandleRedeemByToken)
	}
	staffGroup := apiGroup.Group("/staff", a.authHandler.HandleStaffJWTMiddleware)
	{
		staffGroup.POST("/participations/:participation_id/verify", a.participationHandler.HandleVerify)
		staffGroup.POST("/participations/:participation_id/redeem", a.participationHandler.HandleStaffRedeem)
		staffGroup.GET("/stats", a.statsHandler.HandleGetDailyStats)
		staffGroup.POST("/stats/rebuild", a.statsHandler.HandleRebuildDay)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	a.router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := a.db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

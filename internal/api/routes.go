package api

import (
	"github.com/gin-gonic/gin"

	"github.com/projectsentry/narrative-analyzer/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/detect", handler.Detect) // POST /api/v1/detect
		v1.GET("/terms", handler.Terms)    // GET /api/v1/terms
	}
}

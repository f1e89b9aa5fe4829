package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Asset catalog
		v1.GET("/assets", handler.ListAssets)
		v1.POST("/assets", handler.CreateAsset)
		v1.GET("/assets/:id", handler.GetAsset)

		// Editing, PUT on the edit path is kept for older clients
		v1.GET("/assets/:id/edit", handler.GetEditableAsset)
		v1.PUT("/assets/:id", handler.EditAsset)
		v1.PUT("/assets/:id/edit", handler.EditAsset)

		// Simulated purchases
		v1.POST("/assets/:id/investments", handler.Invest)

		// Oracle
		v1.GET("/assets/:id/valuation", handler.GetValuation)
		v1.GET("/market", handler.GetMarketSummary)
		v1.GET("/oracle/prices", handler.GetPrices)
	}
}

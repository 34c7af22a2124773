package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Store endpoints
	router.GET("/store/:storeId", handler.GetStore)
	router.POST("/store", handler.CreateStore)
	router.DELETE("/store", handler.DeleteStore)

	// Per-store configurations datatable provisioning
	router.POST("/datatable", handler.CreateDatatable)

	// Customer configuration endpoints
	router.POST("/customer_configurations", handler.SaveConfiguration)
	router.GET("/customer_configurations", handler.ListConfigurations)
	router.DELETE("/customer_configurations", handler.DeleteConfiguration)
	router.GET("/configuration", handler.GetConfiguration)
}

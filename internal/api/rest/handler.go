package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/craftcloud/configurator-api/internal/repository"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetStore retrieves a store row together with the full stores table
	// GET /store/:storeId
	GetStore(c *gin.Context)

	// CreateStore registers a store and its configurations datatable
	// POST /store
	CreateStore(c *gin.Context)

	// DeleteStore removes a store and cascades to its configurations datatable
	// DELETE /store?storeId=<id>
	DeleteStore(c *gin.Context)

	// CreateDatatable creates the per-store configurations datatable
	// POST /datatable
	CreateDatatable(c *gin.Context)

	// SaveConfiguration saves a customer configuration
	// POST /customer_configurations
	SaveConfiguration(c *gin.Context)

	// ListConfigurations lists one customer's configurations in a store
	// GET /customer_configurations?storeId=<id>&customerId=<id>
	ListConfigurations(c *gin.Context)

	// GetConfiguration retrieves a configuration by its id
	// GET /configuration?storeId=<id>&configurationId=<id>
	GetConfiguration(c *gin.Context)

	// DeleteConfiguration removes a customer's own configuration
	// DELETE /customer_configurations?configurationId=<id>&customerId=<id>&storeId=<id>
	DeleteConfiguration(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	stores         repository.StoreRepository
	configurations repository.ConfigurationRepository
}

// NewHandler creates a new REST API handler
func NewHandler(stores repository.StoreRepository, configurations repository.ConfigurationRepository) Handler {
	return &handler{
		stores:         stores,
		configurations: configurations,
	}
}

// GetStore retrieves a store row together with the full stores table
func (h *handler) GetStore(c *gin.Context) {
	storeID := strings.TrimSpace(c.Param("storeId"))
	if err := validateField("storeId", storeID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	lookup, err := h.stores.FindByStoreID(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lookup)
}

// CreateStore registers a store and its configurations datatable
func (h *handler) CreateStore(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.stores.Create(c.Request.Context(), req.StoreID, req.StoreName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// DeleteStore removes a store and cascades to its configurations datatable
func (h *handler) DeleteStore(c *gin.Context) {
	storeID := strings.TrimSpace(c.Query("storeId"))
	if err := validateField("storeId", storeID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.stores.Delete(c.Request.Context(), storeID); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "ok")
}

// CreateDatatable creates the per-store configurations datatable
func (h *handler) CreateDatatable(c *gin.Context) {
	var req CreateDatatableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	table, err := h.stores.CreateConfigurationsTable(c.Request.Context(), req.StoreID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, table)
}

// SaveConfiguration saves a customer configuration
func (h *handler) SaveConfiguration(c *gin.Context) {
	var req SaveConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// The configuration payload is stored as an opaque serialized string
	data, err := json.Marshal(req.Data)
	if err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid configuration data: %v", err))
		return
	}

	err = h.configurations.Save(c.Request.Context(), repository.SaveConfigurationParams{
		StoreID:         req.StoreID,
		CustomerID:      req.CustomerID,
		ConfigurationID: req.ID,
		Name:            req.Name,
		Data:            string(data),
		Picture:         req.Picture,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Envelope{
		IsError: false,
		Message: "Customer configuration saved successfully",
	})
}

// ListConfigurations lists one customer's configurations in a store
func (h *handler) ListConfigurations(c *gin.Context) {
	storeID := strings.TrimSpace(c.Query("storeId"))
	customerID := strings.TrimSpace(c.Query("customerId"))
	if err := validateField("storeId", storeID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := validateField("customerId", customerID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	configurations, err := h.configurations.ListByCustomer(c.Request.Context(), storeID, customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, configurations)
}

// GetConfiguration retrieves a configuration by its id
func (h *handler) GetConfiguration(c *gin.Context) {
	storeID := strings.TrimSpace(c.Query("storeId"))
	configurationID := strings.TrimSpace(c.Query("configurationId"))
	if err := validateField("storeId", storeID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := validateField("configurationId", configurationID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	configuration, err := h.configurations.FindByConfigurationID(c.Request.Context(), storeID, configurationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		IsError: false,
		Message: "Configuration found successfully",
		Details: configuration,
	})
}

// DeleteConfiguration removes a customer's own configuration
func (h *handler) DeleteConfiguration(c *gin.Context) {
	storeID := strings.TrimSpace(c.Query("storeId"))
	configurationID := strings.TrimSpace(c.Query("configurationId"))
	customerID := strings.TrimSpace(c.Query("customerId"))
	if err := validateField("storeId", storeID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := validateField("configurationId", configurationID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := validateField("customerId", customerID, true); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	deleted, err := h.configurations.DeleteForCustomer(c.Request.Context(), storeID, configurationID, customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleted)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "configurator-api",
	})
}

package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/craftcloud/configurator-api/internal/domain"
	"github.com/craftcloud/configurator-api/internal/logger"
)

// Envelope is the response shape shared by failures and message-style
// successes: {isError, message, status?, details?}
type Envelope struct {
	IsError bool        `json:"isError"`
	Message string      `json:"message"`
	Status  int         `json:"status,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// respondWithError sends the error envelope with the given status code
func respondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		IsError: true,
		Message: message,
		Status:  statusCode,
	})
}

// respondValidationError sends a 400 Bad Request response. Validation
// failures short-circuit before any upstream call.
func respondValidationError(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, message)
}

// respondError maps a repository failure onto the envelope. Anything that
// is not one of the domain sentinels is an upstream failure: the only
// state behind this API is the remote table store.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrConfigurationNotFound),
		errors.Is(err, domain.ErrTableNotFound):
		respondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrStoreExists),
		errors.Is(err, domain.ErrConfigurationExists),
		errors.Is(err, domain.ErrConcurrentUpdate):
		respondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotConfigurationOwner):
		respondWithError(c, http.StatusForbidden, "Not authorized to delete this configuration")
	case errors.Is(err, domain.ErrInvalidTableType):
		respondWithError(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusBadGateway, "Upstream datatable store request failed")
	}
}

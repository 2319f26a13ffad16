package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/dto"
)

// httpStatus maps a domain error to its HTTP status code
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrChecksumMismatch):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrRollbackUnsupported):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrBackendExecution):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response for a failed operation. Errors that
// carry structured fields are logged with them; internal errors never leak
// their details to the caller.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := httpStatus(err)

	type fielder interface {
		LogFields() map[string]any
	}
	var f fielder
	if errors.As(err, &f) {
		logger.Warn("Request failed", f.LogFields())
	} else if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"error": err.Error(),
			"path":  c.Request.URL.Path,
		})
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/rwa-market/asset-catalog/internal/api/shared/errors"
	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.JSON(statusCode, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, field string, details string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewValidationError(field, details))
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	fields = append(fields, zap.String("path", c.Request.URL.Path))
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondError maps a service error to its HTTP form.
// Validation and not-found errors are client errors, everything else is logged as internal.
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadRequest
		switch apiErr.Code {
		case apierrors.ErrCodeNotFound:
			status = http.StatusNotFound
		case apierrors.ErrCodeInternalError, apierrors.ErrCodeServiceError:
			status = http.StatusInternalServerError
		}
		respondWithError(c, status, apiErr)
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		respondValidationError(c, validationErr.Field, validationErr.Message)
		return
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		respondNotFound(c, "Asset not found", notFoundErr.ID)
		return
	}

	respondInternalError(c, err, message)
}

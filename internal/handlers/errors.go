package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
)

// respondWithError maps a service error to its HTTP status and writes the
// message for direct display; every failure is surfaced, never swallowed.
func respondWithError(c *gin.Context, err error) {
	var remoteErr *apperrors.RemoteError
	var transportErr *apperrors.TransportError

	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrMissingRemarks),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyProcessing),
		errors.Is(err, apperrors.ErrDuplicateAuthor),
		errors.Is(err, apperrors.ErrLimitReached):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &remoteErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": remoteErr.Message})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Finance backend unreachable. Please resubmit."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

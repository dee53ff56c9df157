package handlers

import (
	"errors"
	"net/http"

	"car-price-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	// Unavailable errors
	case errors.Is(err, domain.ErrDatasetUnavailable),
		errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusServiceUnavailable

	// Bad request / validation errors
	case errors.Is(err, domain.ErrColumnNotFound),
		errors.Is(err, domain.ErrInvalidRowCount):
		return http.StatusBadRequest

	// Input does not fit the loaded model
	case errors.Is(err, domain.ErrShapeMismatch),
		errors.Is(err, domain.ErrFeatureMismatch):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

func mapDomainError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

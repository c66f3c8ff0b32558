package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tobacco-dashboard-service/internal/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCountryNotFound),
		errors.Is(err, domain.ErrNoObservations):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrUnknownMetric),
		errors.Is(err, domain.ErrUnknownSex),
		errors.Is(err, domain.ErrUnknownIncome),
		errors.Is(err, domain.ErrInvalidYearRange),
		errors.Is(err, domain.ErrInvalidHorizon),
		errors.Is(err, domain.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

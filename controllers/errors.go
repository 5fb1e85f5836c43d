package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

// respondServiceError translates service-layer failures into the HTTP error
// taxonomy. Unknown errors become a generic 500; the detail stays in the
// service logs.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, services.ErrLastAdmin),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidGuestCount),
		errors.Is(err, services.ErrInvalidCategory):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "not allowed")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "an unexpected error occurred")
	}
}

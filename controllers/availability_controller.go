package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cabin-backend/services"
	"cabin-backend/utils"
)

// AvailabilityController serves the public booking calendar. Responses only
// say whether a date is taken; guest details stay private.
type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: availability}
}

// Check reports whether a single date is booked.
func (avc *AvailabilityController) Check(c *gin.Context) {
	raw := c.Query("date")
	date, err := time.Parse(bookingDateLayout, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	booked, err := avc.Availability.IsDateBooked(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"date":   date.Format(bookingDateLayout),
		"booked": booked,
	})
}

// Calendar returns a booked flag for every day of one month.
func (avc *AvailabilityController) Calendar(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "year and month query parameters are required")
		return
	}

	days, err := avc.Availability.Month(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cabin-backend/middleware"
	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

const bookingDateLayout = "2006-01-02"

type createBookingPayload struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Guests    int    `json:"guests" binding:"required"`
	Phone     string `json:"phone"`
}

type changeDatesPayload struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// BookingController exposes the reservation ledger: guest-facing create and
// self-service mutation, admin-facing review and lifecycle actions.
type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

func parseBookingDate(raw string) (time.Time, bool) {
	t, err := time.Parse(bookingDateLayout, raw)
	return t, err == nil
}

// Create submits a stay request on behalf of the authenticated guest. Name
// and email come from the session, never the payload.
func (bc *BookingController) Create(c *gin.Context) {
	claims, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date, end_date, and guests are required")
		return
	}

	start, okStart := parseBookingDate(payload.StartDate)
	end, okEnd := parseBookingDate(payload.EndDate)
	if !okStart || !okEnd {
		utils.JSONError(c, http.StatusBadRequest, "dates must be in YYYY-MM-DD format")
		return
	}

	booking, err := bc.Bookings.Create(c.Request.Context(), services.CreateBookingInput{
		GuestName:  claims.Name,
		GuestEmail: claims.Email,
		Phone:      payload.Phone,
		StartDate:  start,
		EndDate:    end,
		Guests:     payload.Guests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"booking": booking})
}

// List returns every booking. Admin only.
func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.Bookings.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bookings": bookings})
}

// Mine returns the authenticated guest's own bookings.
func (bc *BookingController) Mine(c *gin.Context) {
	claims, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	bookings, err := bc.Bookings.ListByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bookings": bookings})
}

// Get returns one booking, visible to admins and to the owning guest.
func (bc *BookingController) Get(c *gin.Context) {
	claims, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	booking, err := bc.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if claims.Role != models.RoleAdmin && booking.GuestEmail != claims.Email {
		utils.JSONError(c, http.StatusForbidden, "not allowed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

func (bc *BookingController) Approve(c *gin.Context) {
	booking, err := bc.Bookings.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

func (bc *BookingController) Reject(c *gin.Context) {
	booking, err := bc.Bookings.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

// ChangeDates is the admin date edit; allowed in any status.
func (bc *BookingController) ChangeDates(c *gin.Context) {
	var payload changeDatesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	start, okStart := parseBookingDate(payload.StartDate)
	end, okEnd := parseBookingDate(payload.EndDate)
	if !okStart || !okEnd {
		utils.JSONError(c, http.StatusBadRequest, "dates must be in YYYY-MM-DD format")
		return
	}

	booking, err := bc.Bookings.ChangeDates(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

// GuestChangeDates lets a guest change or extend their own stay.
func (bc *BookingController) GuestChangeDates(c *gin.Context) {
	claims, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload changeDatesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	start, okStart := parseBookingDate(payload.StartDate)
	end, okEnd := parseBookingDate(payload.EndDate)
	if !okStart || !okEnd {
		utils.JSONError(c, http.StatusBadRequest, "dates must be in YYYY-MM-DD format")
		return
	}

	booking, err := bc.Bookings.GuestChangeDates(c.Request.Context(), claims.Email, c.Param("id"), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

// Cancel removes the guest's own booking.
func (bc *BookingController) Cancel(c *gin.Context) {
	claims, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := bc.Bookings.GuestCancel(c.Request.Context(), claims.Email, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking cancelled"})
}

// Delete removes any booking. Admin only.
func (bc *BookingController) Delete(c *gin.Context) {
	if err := bc.Bookings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}

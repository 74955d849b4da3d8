// controllers/reservation.go
package controllers

import (
	"errors"
	"net/http"

	"beautyforyou-backend/config"
	"beautyforyou-backend/models"
	"beautyforyou-backend/services"
	"beautyforyou-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RescheduleReservationInput struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"`
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrStaffNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrWeekend),
		errors.Is(err, services.ErrPastDate),
		errors.Is(err, services.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := userID.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetBookingOptions returns the category, its eligible staff and services,
// and the offerable time slots
func GetBookingOptions(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	booking := services.NewBookingService(config.DB)
	options, err := booking.Options(categoryUUID)
	if err != nil {
		utils.RespondWithError(c, bookingErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, options)
}

// CreateReservation submits a booking for the authenticated client
func CreateReservation(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input services.SubmitReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking := services.NewBookingService(config.DB)
	reservation, err := booking.Submit(clientID, input)
	if err != nil {
		utils.RespondWithError(c, bookingErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Your reservation has been accepted",
		"reservation": reservation,
	})
}

// GetMyReservations lists the caller's own reservations
func GetMyReservations(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var reservations []models.Reservation
	if err := config.DB.
		Preload("Staff").Preload("Services").Preload("Categories").
		Where("client_id = ?", clientID).
		Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// UpdateReservation changes the date/time of one reservation
func UpdateReservation(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input RescheduleReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking := services.NewBookingService(config.DB)
	reservation, err := booking.Reschedule(reservationUUID, input.Date, input.Time)
	if err != nil {
		utils.RespondWithError(c, bookingErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation cancels a reservation
func DeleteReservation(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	result := config.DB.Where("id = ?", reservationUUID).Delete(&models.Reservation{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

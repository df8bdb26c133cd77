package controllers

import (
	"errors"
	"net/http"
	"time"

	"eventora-backend/config"
	"eventora-backend/models"
	"eventora-backend/services"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	PlannerID    string `json:"plannerId" binding:"required,uuid"`
	CustomerName string `json:"customerName" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	EventType    string `json:"eventType" binding:"required"`
	Category     string `json:"category"`
	Location     string `json:"location" binding:"required"`
	EventDate    string `json:"eventDate" binding:"required,futuredate"`
	EventTime    string `json:"eventTime" binding:"required,eventtime"`
	Requirements string `json:"requirements"`
}

type UpdateBookingInput struct {
	CustomerName string `json:"customerName" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	EventType    string `json:"eventType" binding:"required"`
	Category     string `json:"category"`
	Location     string `json:"location" binding:"required"`
	EventDate    string `json:"eventDate" binding:"required,futuredate"`
	EventTime    string `json:"eventTime" binding:"required,eventtime"`
	Requirements string `json:"requirements"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func bookingByID(c *gin.Context) (*models.Booking, bool) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return nil, false
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &booking, true
}

// CreateBooking inserts a pending booking for the calling customer.
func CreateBooking(c *gin.Context) {
	customerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	plannerID := uuid.MustParse(input.PlannerID)
	var plannerUser models.User
	if err := config.DB.First(&plannerUser, "id = ? AND user_type = ?",
		plannerID, models.UserTypePlanner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Planner not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	eventDate, err := time.ParseInLocation("2006-01-02", input.EventDate, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "eventDate must be in YYYY-MM-DD format")
		return
	}

	booking := models.Booking{
		CustomerID:   customerID,
		PlannerID:    plannerUser.ID,
		PlannerName:  plannerUser.FullName,
		CustomerName: input.CustomerName,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		EventType:    input.EventType,
		Category:     input.Category,
		Location:     input.Location,
		EventDate:    eventDate,
		EventTime:    input.EventTime,
		Requirements: input.Requirements,
		Status:       models.BookingStatusPending,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	services.NewNotificationService(config.DB).NotifyBookingCreated(&booking)

	c.JSON(http.StatusCreated, booking)
}

// GetBooking returns a booking to its owning customer or assigned planner.
func GetBooking(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	booking, ok := bookingByID(c)
	if !ok {
		return
	}

	if booking.CustomerID != userID && booking.PlannerID != userID {
		utils.RespondWithError(c, http.StatusForbidden, "You do not have access to this booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetMyBookings lists bookings scoped to the caller's role, newest first.
func GetMyBookings(c *gin.Context) {
	userID, claims, ok := currentIdentity(c)
	if !ok {
		return
	}

	query := config.DB.Order("created_at DESC")
	if claims.UserType == models.UserTypePlanner {
		query = query.Where("planner_id = ?", userID)
	} else {
		query = query.Where("customer_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus transitions a booking along the lifecycle. Terminal
// states accept no further transitions.
func UpdateBookingStatus(c *gin.Context) {
	plannerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !models.IsValidBookingStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking status: "+input.Status)
		return
	}

	booking, ok := bookingByID(c)
	if !ok {
		return
	}
	if booking.PlannerID != plannerID {
		utils.RespondWithError(c, http.StatusForbidden, "This booking belongs to another planner")
		return
	}

	if !models.CanTransition(booking.Status, input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Cannot transition booking from "+booking.Status+" to "+input.Status)
		return
	}

	applyStatus(booking, input.Status, "")

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	services.NewNotificationService(config.DB).NotifyBookingStatusChanged(booking)

	c.JSON(http.StatusOK, booking)
}

// applyStatus sets the status and its transition timestamp.
func applyStatus(booking *models.Booking, status, reason string) {
	now := time.Now()
	booking.Status = status
	switch status {
	case models.BookingStatusConfirmed:
		booking.ConfirmedAt = &now
	case models.BookingStatusCompleted:
		booking.CompletedAt = &now
	case models.BookingStatusRejected:
		booking.RejectionReason = reason
	}
}

// UpdateBooking edits booking details. Customers may only edit while the
// booking is pending; planners assigned to the booking are not restricted by
// status.
func UpdateBooking(c *gin.Context) {
	userID, claims, ok := currentIdentity(c)
	if !ok {
		return
	}

	booking, ok := bookingByID(c)
	if !ok {
		return
	}

	if claims.UserType == models.UserTypePlanner {
		if booking.PlannerID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "This booking belongs to another planner")
			return
		}
	} else {
		if booking.CustomerID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "You do not have access to this booking")
			return
		}
		if booking.Status != models.BookingStatusPending {
			utils.RespondWithError(c, http.StatusBadRequest, "Only pending bookings can be edited")
			return
		}
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	eventDate, err := time.ParseInLocation("2006-01-02", input.EventDate, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "eventDate must be in YYYY-MM-DD format")
		return
	}

	booking.CustomerName = input.CustomerName
	booking.PhoneNumber = input.PhoneNumber
	booking.Email = input.Email
	booking.EventType = input.EventType
	booking.Category = input.Category
	booking.Location = input.Location
	booking.EventDate = eventDate
	booking.EventTime = input.EventTime
	booking.Requirements = input.Requirements

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking. Customers may delete only their own
// pending bookings; planners may delete any booking assigned to them.
func DeleteBooking(c *gin.Context) {
	userID, claims, ok := currentIdentity(c)
	if !ok {
		return
	}

	booking, ok := bookingByID(c)
	if !ok {
		return
	}

	if claims.UserType == models.UserTypePlanner {
		if booking.PlannerID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "This booking belongs to another planner")
			return
		}
	} else {
		if booking.CustomerID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "You do not have access to this booking")
			return
		}
		if booking.Status != models.BookingStatusPending {
			utils.RespondWithError(c, http.StatusForbidden, "Only pending bookings can be deleted")
			return
		}
	}

	if err := config.DB.Delete(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// GetBookingsByDateRange lists a planner's bookings between two dates,
// ordered by event date.
func GetBookingsByDateRange(c *gin.Context) {
	plannerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "start must be in YYYY-MM-DD format")
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "end must be in YYYY-MM-DD format")
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Where("planner_id = ? AND event_date >= ? AND event_date <= ?", plannerID, start, end).
		Order("event_date ASC").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingStats returns the planner's booking counts per status.
func GetBookingStats(c *gin.Context) {
	plannerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var counts []statusCount
	if err := config.DB.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Where("planner_id = ?", plannerID).
		Group("status").
		Scan(&counts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}

	stats := gin.H{
		models.BookingStatusPending:   int64(0),
		models.BookingStatusConfirmed: int64(0),
		models.BookingStatusRejected:  int64(0),
		models.BookingStatusCompleted: int64(0),
		models.BookingStatusCancelled: int64(0),
	}
	var total int64
	for _, row := range counts {
		stats[row.Status] = row.Count
		total += row.Count
	}
	stats["total"] = total

	c.JSON(http.StatusOK, stats)
}

package controllers

import (
	"errors"
	"net/http"

	"eventora-backend/config"
	"eventora-backend/models"
	"eventora-backend/services"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	BookingID string `json:"bookingId" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"max=1000"`
}

// CreateReview records a review for a completed booking and recomputes the
// planner's aggregate rating. The insert and the recompute run in one
// transaction; the aggregate is always rebuilt from the source rows, never
// incremented.
func CreateReview(c *gin.Context) {
	customerID, claims, ok := currentIdentity(c)
	if !ok {
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bookingID := uuid.MustParse(input.BookingID)
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.CustomerID != customerID {
		utils.RespondWithError(c, http.StatusForbidden, "You do not have access to this booking")
		return
	}
	if booking.Status != models.BookingStatusCompleted {
		utils.RespondWithError(c, http.StatusBadRequest, "Only completed bookings can be reviewed")
		return
	}

	var existing models.Review
	if err := config.DB.First(&existing, "booking_id = ?", bookingID).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "This booking has already been reviewed")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	review := models.Review{
		BookingID:  bookingID,
		CustomerID: customerID,
		PlannerID:  booking.PlannerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		// the unique booking_id index backstops the application-level check
		utils.RespondWithError(c, http.StatusBadRequest, utils.TranslateDBError(err))
		return
	}

	if err := recomputePlannerRating(tx, booking.PlannerID); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update planner rating")
		return
	}

	tx.Commit()

	services.NewNotificationService(config.DB).
		NotifyReviewReceived(booking.PlannerID, claims.FullName, review.Rating, booking.ID)

	c.JSON(http.StatusCreated, review)
}

// recomputePlannerRating rebuilds average_rating and total_reviews from all
// of the planner's reviews.
func recomputePlannerRating(tx *gorm.DB, plannerID uuid.UUID) error {
	type aggregate struct {
		Average float64
		Total   int64
	}
	var agg aggregate
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("planner_id = ?", plannerID).
		Scan(&agg).Error; err != nil {
		return err
	}

	return tx.Model(&models.Planner{}).
		Where("user_id = ?", plannerID).
		Updates(map[string]interface{}{
			"average_rating": agg.Average,
			"total_reviews":  agg.Total,
		}).Error
}

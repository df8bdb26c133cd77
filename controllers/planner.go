package controllers

import (
	"errors"
	"io"
	"net/http"

	"eventora-backend/config"
	"eventora-backend/models"
	"eventora-backend/services"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RejectBookingInput struct {
	Reason string `json:"reason"`
}

// pendingBookingForPlanner loads the booking and checks it belongs to the
// calling planner and is still pending.
func pendingBookingForPlanner(c *gin.Context, plannerID uuid.UUID) (*models.Booking, bool) {
	booking, ok := bookingByID(c)
	if !ok {
		return nil, false
	}
	if booking.PlannerID != plannerID {
		utils.RespondWithError(c, http.StatusForbidden, "This booking belongs to another planner")
		return nil, false
	}
	if booking.Status != models.BookingStatusPending {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Only pending bookings can be accepted or rejected")
		return nil, false
	}
	return booking, true
}

// AcceptBooking confirms a pending booking.
func AcceptBooking(c *gin.Context) {
	plannerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	booking, ok := pendingBookingForPlanner(c, plannerID)
	if !ok {
		return
	}

	applyStatus(booking, models.BookingStatusConfirmed, "")

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	services.NewNotificationService(config.DB).NotifyBookingStatusChanged(booking)

	c.JSON(http.StatusOK, booking)
}

// RejectBooking declines a pending booking with an optional reason.
func RejectBooking(c *gin.Context) {
	plannerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	// The reason is optional: an empty body binds as io.EOF and is fine,
	// but malformed JSON is still rejected.
	var input RejectBookingInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, ok := pendingBookingForPlanner(c, plannerID)
	if !ok {
		return
	}

	applyStatus(booking, models.BookingStatusRejected, input.Reason)

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	services.NewNotificationService(config.DB).NotifyBookingStatusChanged(booking)

	c.JSON(http.StatusOK, booking)
}

type plannerListing struct {
	UserID        uuid.UUID `json:"userId"`
	FullName      string    `json:"fullName"`
	Location      string    `json:"location"`
	BusinessName  *string   `json:"businessName"`
	Bio           *string   `json:"bio"`
	Experience    *int      `json:"experience"`
	BasePrice     *float64  `json:"basePrice"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
}

// ListPlanners is the public planner directory, best rated first.
func ListPlanners(c *gin.Context) {
	query := config.DB.Table("planners").
		Select(`planners.user_id, users.full_name, users.location,
			planners.business_name, planners.bio, planners.experience,
			planners.base_price, planners.average_rating, planners.total_reviews`).
		Joins("JOIN users ON users.id = planners.user_id").
		Where("planners.deleted_at IS NULL AND users.deleted_at IS NULL")

	if location := c.Query("location"); location != "" {
		query = query.Where("users.location ILIKE ?", "%"+location+"%")
	}
	if specialization := c.Query("specialization"); specialization != "" {
		query = query.Where("planners.specializations::text ILIKE ?", "%"+specialization+"%")
	}

	var planners []plannerListing
	if err := query.Order("planners.average_rating DESC, planners.total_reviews DESC").
		Scan(&planners).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve planners")
		return
	}

	c.JSON(http.StatusOK, planners)
}

// GetPlanner returns a single planner's public profile by user id.
func GetPlanner(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid planner ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ? AND user_type = ?",
		userID, models.UserTypePlanner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Planner not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var planner models.Planner
	if err := config.DB.First(&planner, "user_id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Planner not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":          user.ID,
		"fullName":        user.FullName,
		"location":        user.Location,
		"businessName":    planner.BusinessName,
		"bio":             planner.Bio,
		"experience":      planner.Experience,
		"specializations": planner.Specializations,
		"basePrice":       planner.BasePrice,
		"averageRating":   planner.AverageRating,
		"totalReviews":    planner.TotalReviews,
	})
}

// GetPlannerReviews lists a planner's reviews, newest first.
func GetPlannerReviews(c *gin.Context) {
	plannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid planner ID format")
		return
	}

	var reviews []models.Review
	if err := config.DB.Where("planner_id = ?", plannerID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GetEarnings reports the planner's completed bookings and estimated revenue
// (completed count times base price), with a monthly breakdown.
func GetEarnings(c *gin.Context) {
	plannerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	var planner models.Planner
	if err := config.DB.First(&planner, "user_id = ?", plannerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Planner profile not found")
		return
	}

	basePrice := 0.0
	if planner.BasePrice != nil {
		basePrice = *planner.BasePrice
	}

	var completedCount int64
	config.DB.Model(&models.Booking{}).
		Where("planner_id = ? AND status = ?", plannerID, models.BookingStatusCompleted).
		Count(&completedCount)

	type monthlyRow struct {
		Month string `json:"month"`
		Count int64  `json:"count"`
	}
	var monthly []monthlyRow
	config.DB.Raw(`
		SELECT TO_CHAR(completed_at, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM bookings
		WHERE planner_id = ? AND status = ? AND deleted_at IS NULL
		GROUP BY month
		ORDER BY month DESC
		LIMIT 12
	`, plannerID, models.BookingStatusCompleted).Scan(&monthly)

	type monthlyEarnings struct {
		Month   string  `json:"month"`
		Count   int64   `json:"count"`
		Revenue float64 `json:"revenue"`
	}
	breakdown := make([]monthlyEarnings, 0, len(monthly))
	for _, row := range monthly {
		breakdown = append(breakdown, monthlyEarnings{
			Month:   row.Month,
			Count:   row.Count,
			Revenue: float64(row.Count) * basePrice,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"completedBookings": completedCount,
		"basePrice":         basePrice,
		"totalRevenue":      float64(completedCount) * basePrice,
		"monthly":           breakdown,
	})
}

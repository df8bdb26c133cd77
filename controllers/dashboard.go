package controllers

import (
	"net/http"

	"eventora-backend/config"
	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func bookingStatusCounts(ownerColumn string, ownerID uuid.UUID) (map[string]int64, int64) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	config.DB.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Where(ownerColumn+" = ?", ownerID).
		Group("status").
		Scan(&rows)

	counts := map[string]int64{
		models.BookingStatusPending:   0,
		models.BookingStatusConfirmed: 0,
		models.BookingStatusRejected:  0,
		models.BookingStatusCompleted: 0,
		models.BookingStatusCancelled: 0,
	}
	var total int64
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}
	return counts, total
}

func unreadNotificationCount(userID uuid.UUID) int64 {
	var unread int64
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&unread)
	return unread
}

// GetPlannerDashboard returns the planner's overview: booking counts, recent
// bookings, rating summary and unread notifications.
func GetPlannerDashboard(c *gin.Context) {
	plannerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	counts, total := bookingStatusCounts("planner_id", plannerID)

	var recentBookings []models.Booking
	config.DB.Where("planner_id = ?", plannerID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentBookings)

	var planner models.Planner
	if err := config.DB.First(&planner, "user_id = ?", plannerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Planner profile not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": gin.H{
			"total":    total,
			"byStatus": counts,
		},
		"recentBookings":      recentBookings,
		"averageRating":       planner.AverageRating,
		"totalReviews":        planner.TotalReviews,
		"unreadNotifications": unreadNotificationCount(plannerID),
	})
}

// GetCustomerDashboard returns the customer's overview: booking counts,
// upcoming confirmed events and unread notifications.
func GetCustomerDashboard(c *gin.Context) {
	customerID, _, ok := currentIdentity(c)
	if !ok {
		return
	}

	counts, total := bookingStatusCounts("customer_id", customerID)

	var recentBookings []models.Booking
	config.DB.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentBookings)

	var upcomingEvents []models.Booking
	config.DB.Where("customer_id = ? AND status = ? AND event_date >= CURRENT_DATE",
		customerID, models.BookingStatusConfirmed).
		Order("event_date ASC").
		Limit(5).
		Find(&upcomingEvents)

	c.JSON(http.StatusOK, gin.H{
		"bookings": gin.H{
			"total":    total,
			"byStatus": counts,
		},
		"recentBookings":      recentBookings,
		"upcomingEvents":      upcomingEvents,
		"unreadNotifications": unreadNotificationCount(customerID),
	})
}

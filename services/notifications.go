package services

import (
	"fmt"
	"time"

	"eventora-backend/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NotificationService writes in-app notification rows. Creation is
// synchronous within the triggering request; clients poll for new entries.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Create inserts a notification row. Failures are logged, not propagated: a
// lost notification must never fail the action that produced it.
func (s *NotificationService) Create(userID uuid.UUID, title, message, notifType string, bookingID *uuid.UUID) {
	notification := models.Notification{
		UserID:           userID,
		Title:            title,
		Message:          message,
		Type:             notifType,
		RelatedBookingID: bookingID,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Error().Err(err).Str("userId", userID.String()).Msg("failed to create notification")
	}
}

// BookingCreatedMessage builds the planner-facing notification for a new
// booking request.
func BookingCreatedMessage(customerName, eventType string, eventDate time.Time) (string, string) {
	return "New booking request",
		fmt.Sprintf("%s requested a %s on %s", customerName, eventType, eventDate.Format("Jan 2, 2006"))
}

// BookingStatusMessage builds the customer-facing notification for a status
// change.
func BookingStatusMessage(status, eventType string, eventDate time.Time) (string, string) {
	date := eventDate.Format("Jan 2, 2006")
	switch status {
	case models.BookingStatusConfirmed:
		return "Booking confirmed", fmt.Sprintf("Your %s on %s has been confirmed", eventType, date)
	case models.BookingStatusRejected:
		return "Booking declined", fmt.Sprintf("Your %s on %s was declined by the planner", eventType, date)
	case models.BookingStatusCompleted:
		return "Booking completed", fmt.Sprintf("Your %s on %s is complete. Leave a review!", eventType, date)
	case models.BookingStatusCancelled:
		return "Booking cancelled", fmt.Sprintf("Your %s on %s has been cancelled", eventType, date)
	}
	return "Booking updated", fmt.Sprintf("Your %s on %s was updated to %s", eventType, date, status)
}

// ReviewReceivedMessage builds the planner-facing notification for a new
// review.
func ReviewReceivedMessage(customerName string, rating int) (string, string) {
	return "New review received",
		fmt.Sprintf("%s left you a %d-star review", customerName, rating)
}

func (s *NotificationService) NotifyBookingCreated(booking *models.Booking) {
	title, message := BookingCreatedMessage(booking.CustomerName, booking.EventType, booking.EventDate)
	s.Create(booking.PlannerID, title, message, models.NotificationTypeBooking, &booking.ID)
}

func (s *NotificationService) NotifyBookingStatusChanged(booking *models.Booking) {
	title, message := BookingStatusMessage(booking.Status, booking.EventType, booking.EventDate)
	s.Create(booking.CustomerID, title, message, models.NotificationTypeBooking, &booking.ID)
}

func (s *NotificationService) NotifyReviewReceived(plannerID uuid.UUID, customerName string, rating int, bookingID uuid.UUID) {
	title, message := ReviewReceivedMessage(customerName, rating)
	s.Create(plannerID, title, message, models.NotificationTypeReview, &bookingID)
}

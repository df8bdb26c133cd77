// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends customers an SMS the day before a confirmed event and
// mirrors it as an in-app notification.
type ReminderService struct {
	db            *gorm.DB
	client        *twilio.RestClient
	notifications *NotificationService
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		notifications: NewNotificationService(db),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendEventReminders()
	})

	c.Start()
	log.Info().Msg("Event reminder scheduler started")
}

// SendEventReminders processes all confirmed bookings happening tomorrow.
func (s *ReminderService) SendEventReminders() {
	log.Info().Msg("Starting daily event reminder processing")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var bookings []models.Booking
	if err := s.db.Where("status = ? AND event_date >= ? AND event_date < ?",
		models.BookingStatusConfirmed, tomorrow, dayAfter).
		Find(&bookings).Error; err != nil {
		log.Error().Err(err).Msg("Failed to fetch bookings for reminders")
		return
	}

	for _, booking := range bookings {
		s.sendReminder(&booking)
	}

	log.Info().Int("count", len(bookings)).Msg("Daily event reminder processing completed")
}

func (s *ReminderService) sendReminder(booking *models.Booking) {
	message := fmt.Sprintf("Reminder: your %s at %s is tomorrow at %s.",
		booking.EventType, booking.Location, booking.EventTime)

	s.notifications.Create(booking.CustomerID, "Event reminder", message,
		models.NotificationTypeReminder, &booking.ID)

	if os.Getenv("TWILIO_PHONE_NUMBER") == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(booking.PhoneNumber)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID.String()).Msg("Failed to send reminder SMS")
		return
	}
	if resp.Sid != nil {
		log.Info().Str("bookingId", booking.ID.String()).Str("sid", *resp.Sid).Msg("Reminder SMS sent")
	}
}

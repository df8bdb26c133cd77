package services

import (
	"testing"
	"time"

	"eventora-backend/models"

	"github.com/stretchr/testify/assert"
)

var eventDate = time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)

func TestBookingCreatedMessage(t *testing.T) {
	title, message := BookingCreatedMessage("Jane Doe", "wedding", eventDate)
	assert.Equal(t, "New booking request", title)
	assert.Equal(t, "Jane Doe requested a wedding on Oct 12, 2026", message)
}

func TestBookingStatusMessage(t *testing.T) {
	cases := []struct {
		status string
		title  string
	}{
		{models.BookingStatusConfirmed, "Booking confirmed"},
		{models.BookingStatusRejected, "Booking declined"},
		{models.BookingStatusCompleted, "Booking completed"},
		{models.BookingStatusCancelled, "Booking cancelled"},
	}
	for _, tc := range cases {
		title, message := BookingStatusMessage(tc.status, "birthday party", eventDate)
		assert.Equal(t, tc.title, title, tc.status)
		assert.Contains(t, message, "birthday party")
		assert.Contains(t, message, "Oct 12, 2026")
	}
}

func TestReviewReceivedMessage(t *testing.T) {
	title, message := ReviewReceivedMessage("Jane Doe", 4)
	assert.Equal(t, "New review received", title)
	assert.Equal(t, "Jane Doe left you a 4-star review", message)
}

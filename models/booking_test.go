package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "rejected", "completed", "cancelled"} {
		assert.True(t, IsValidBookingStatus(s), s)
	}
	assert.False(t, IsValidBookingStatus("archived"))
	assert.False(t, IsValidBookingStatus(""))
	assert.False(t, IsValidBookingStatus("Pending"))
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{BookingStatusPending, BookingStatusConfirmed}:   true,
		{BookingStatusPending, BookingStatusRejected}:    true,
		{BookingStatusConfirmed, BookingStatusCompleted}: true,
		{BookingStatusConfirmed, BookingStatusCancelled}: true,
	}

	statuses := []string{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusCompleted, BookingStatusCancelled,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			got := CanTransition(from, to)
			assert.Equal(t, allowed[[2]string{from, to}], got, "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatesAcceptNoTransitions(t *testing.T) {
	statuses := []string{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusCompleted, BookingStatusCancelled,
	}
	for _, from := range statuses {
		if !IsTerminalStatus(from) {
			continue
		}
		for _, to := range statuses {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestNoBackwardTransitionToPending(t *testing.T) {
	for _, from := range []string{
		BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusCompleted, BookingStatusCancelled,
	} {
		assert.False(t, CanTransition(from, BookingStatusPending), from)
	}
}

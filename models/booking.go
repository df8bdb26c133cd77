package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	PlannerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"plannerId"`

	// Display copy of the planner's name at booking time. Ownership checks
	// always go through PlannerID, never this field.
	PlannerName string `json:"plannerName"`

	CustomerName string `gorm:"not null" json:"customerName"`
	PhoneNumber  string `gorm:"not null" json:"phoneNumber"`
	Email        string `gorm:"not null" json:"email"`

	EventType    string    `gorm:"not null" json:"eventType"`
	Category     string    `json:"category"`
	Location     string    `gorm:"not null" json:"location"`
	EventDate    time.Time `gorm:"not null" json:"eventDate"`
	EventTime    string    `gorm:"type:varchar(20);not null" json:"eventTime"`
	Requirements string    `gorm:"type:text" json:"requirements"`

	Status          string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	RejectionReason string `gorm:"type:text" json:"rejectionReason,omitempty"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	CompletedAt *time.Time `json:"completedAt"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// IsValidBookingStatus reports whether s is a member of the status enum.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminalStatus reports whether a booking in status s accepts no further
// transitions.
func IsTerminalStatus(s string) bool {
	switch s {
	case BookingStatusRejected, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransition encodes the forward-only lifecycle:
// pending -> confirmed | rejected, confirmed -> completed | cancelled.
func CanTransition(from, to string) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusRejected
	case BookingStatusConfirmed:
		return to == BookingStatusCompleted || to == BookingStatusCancelled
	}
	return false
}

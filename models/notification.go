package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeBooking  = "booking"
	NotificationTypeReview   = "review"
	NotificationTypeReminder = "reminder"
)

type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Title            string     `gorm:"not null" json:"title"`
	Message          string     `gorm:"type:text;not null" json:"message"`
	Type             string     `gorm:"type:varchar(20);not null" json:"type"`
	RelatedBookingID *uuid.UUID `gorm:"type:uuid" json:"relatedBookingId,omitempty"`

	IsRead bool `gorm:"default:false" json:"isRead"`

	gorm.Model
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is tied 1:1 to a completed booking. PlannerID is the planner's user
// id, matching Booking.PlannerID.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"bookingId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	PlannerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"plannerId"`

	Rating  int    `gorm:"not null" json:"rating"` // 1-5
	Comment string `gorm:"type:text" json:"comment"`

	gorm.Model
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

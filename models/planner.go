package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Planner extends a User row with business details. AverageRating and
// TotalReviews are recomputed from the reviews table on every review write,
// never mutated independently.
type Planner struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`

	BusinessName    *string        `json:"businessName"`
	Bio             *string        `gorm:"type:text" json:"bio"`
	Experience      *int           `json:"experience"` // years
	Specializations datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"specializations"`
	BasePrice       *float64       `gorm:"type:decimal(10,2)" json:"basePrice"`

	AverageRating float64 `gorm:"type:decimal(3,2);default:0" json:"averageRating"`
	TotalReviews  int     `gorm:"default:0" json:"totalReviews"`

	gorm.Model
}

func (p *Planner) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// HasBusinessDetails reports whether every required business field is set.
func (p *Planner) HasBusinessDetails() bool {
	if p == nil {
		return false
	}
	if p.BusinessName == nil || *p.BusinessName == "" {
		return false
	}
	if p.Bio == nil || *p.Bio == "" {
		return false
	}
	return p.Experience != nil && p.BasePrice != nil
}

// IsProfileComplete is the authoritative completeness predicate: both
// verification documents uploaded and all business fields present. The stored
// User.ProfileCompleted flag is only a cache of this value.
func IsProfileComplete(u *User, p *Planner) bool {
	if u == nil {
		return false
	}
	if !u.HasIDCard() || !u.HasBirthCertificate() {
		return false
	}
	return p.HasBusinessDetails()
}

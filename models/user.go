package models

import (
	"eventora-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	UserTypeCustomer = "customer"
	UserTypePlanner  = "planner"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName    string    `gorm:"not null" json:"fullName"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"not null" json:"phoneNumber"`
	Password    string    `gorm:"not null" json:"-"`

	UserType    string         `gorm:"type:varchar(20);not null" json:"userType"` // 'customer' or 'planner'
	Location    string         `json:"location"`
	DateOfBirth *time.Time     `json:"dateOfBirth"`
	Preferences datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"preferences"`

	ProfileImage     []byte `gorm:"type:bytea" json:"-"`
	ProfileImageType string `gorm:"type:varchar(100)" json:"-"`

	// Verification documents, planner accounts only
	IDCardData           []byte `gorm:"type:bytea" json:"-"`
	IDCardType           string `gorm:"type:varchar(100)" json:"-"`
	BirthCertificateData []byte `gorm:"type:bytea" json:"-"`
	BirthCertificateType string `gorm:"type:varchar(100)" json:"-"`

	ProfileCompleted bool `gorm:"default:false" json:"profileCompleted"`

	LastLogin *time.Time `json:"lastLogin"`

	Planner *Planner `gorm:"foreignKey:UserID" json:"planner,omitempty"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

func (u *User) HasIDCard() bool {
	return len(u.IDCardData) > 0
}

func (u *User) HasBirthCertificate() bool {
	return len(u.BirthCertificateData) > 0
}

package utils

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15551234567"))
	assert.True(t, ValidatePhone("8031234567")) // digits only
	assert.True(t, ValidatePhone("+234 803 123 4567"))
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("123"))
}

type bookingDates struct {
	EventDate string `validate:"required,futuredate"`
	EventTime string `validate:"required,eventtime"`
}

func newTestValidator() *validator.Validate {
	v := validator.New()
	RegisterCustomValidations(v)
	return v
}

func TestFutureDateValidation(t *testing.T) {
	v := newTestValidator()

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	assert.NoError(t, v.Struct(bookingDates{EventDate: today, EventTime: "14:00"}))
	assert.NoError(t, v.Struct(bookingDates{EventDate: tomorrow, EventTime: "14:00"}))
	assert.Error(t, v.Struct(bookingDates{EventDate: yesterday, EventTime: "14:00"}))
	assert.Error(t, v.Struct(bookingDates{EventDate: "not-a-date", EventTime: "14:00"}))
}

func TestFutureDateUsesLocalCalendarDay(t *testing.T) {
	// On a server west of UTC, "today" in local time is still a valid
	// event date even though UTC has already rolled over to tomorrow.
	original := time.Local
	time.Local = time.FixedZone("UTC-8", -8*60*60)
	defer func() { time.Local = original }()

	v := newTestValidator()
	today := time.Now().Format("2006-01-02")

	assert.NoError(t, v.Struct(bookingDates{EventDate: today, EventTime: "10:00"}))
}

func TestEventTimeValidation(t *testing.T) {
	v := newTestValidator()
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	assert.NoError(t, v.Struct(bookingDates{EventDate: tomorrow, EventTime: "09:30"}))
	assert.Error(t, v.Struct(bookingDates{EventDate: tomorrow, EventTime: "9 AM"}))
	assert.Error(t, v.Struct(bookingDates{EventDate: tomorrow, EventTime: "25:00"}))
}

func TestValidateImageUpload(t *testing.T) {
	assert.NoError(t, ValidateImageUpload("image/jpeg", 1024))
	assert.NoError(t, ValidateImageUpload("image/webp", MaxImageUploadBytes))
	assert.Error(t, ValidateImageUpload("image/jpeg", MaxImageUploadBytes+1))
	assert.Error(t, ValidateImageUpload("application/pdf", 1024))
	assert.Error(t, ValidateImageUpload("text/html", 1024))
}

func TestValidateDocumentUpload(t *testing.T) {
	assert.NoError(t, ValidateDocumentUpload("application/pdf", 1024))
	assert.NoError(t, ValidateDocumentUpload("image/png", 1024))
	assert.Error(t, ValidateDocumentUpload("application/pdf", MaxDocumentUploadBytes+1))
	assert.Error(t, ValidateDocumentUpload("application/zip", 1024))
}

// utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MaxImageUploadBytes    = 5 << 20  // 5MB
	MaxDocumentUploadBytes = 10 << 20 // 10MB
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var documentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{6,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// RegisterCustomValidations registers custom validation rules
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("futuredate", validateFutureDate)
	v.RegisterValidation("eventtime", validateEventTime)
}

// validateFutureDate checks a YYYY-MM-DD string is today or later. The date
// is interpreted in server-local time so "today" means the local calendar
// day, matching how the stored event date is parsed.
func validateFutureDate(fl validator.FieldLevel) bool {
	d, err := time.ParseInLocation("2006-01-02", fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	return !d.Before(BeginningOfDay(time.Now()))
}

// validateEventTime checks if string is valid HH:MM format
func validateEventTime(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// ValidateImageUpload checks a profile image against the size cap and type
// allowlist. The returned messages are safe to show the caller verbatim.
func ValidateImageUpload(contentType string, size int64) error {
	if size > MaxImageUploadBytes {
		return fmt.Errorf("file too large: maximum size is %dMB", MaxImageUploadBytes>>20)
	}
	if !imageTypes[contentType] {
		return fmt.Errorf("unsupported file type %s: allowed types are JPEG, PNG, WebP", contentType)
	}
	return nil
}

// ValidateDocumentUpload checks a verification document against the size cap
// and type allowlist (PDF allowed in addition to images).
func ValidateDocumentUpload(contentType string, size int64) error {
	if size > MaxDocumentUploadBytes {
		return fmt.Errorf("file too large: maximum size is %dMB", MaxDocumentUploadBytes>>20)
	}
	if !documentTypes[contentType] {
		return fmt.Errorf("unsupported file type %s: allowed types are JPEG, PNG, WebP, PDF", contentType)
	}
	return nil
}

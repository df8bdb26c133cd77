package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"eventora-backend/config"
	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UpdateCustomerProfileInput struct {
	FullName    *string   `json:"fullName"`
	PhoneNumber *string   `json:"phoneNumber"`
	Location    *string   `json:"location"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Preferences *[]string `json:"preferences"`
}

type UpdatePlannerProfileInput struct {
	FullName        *string   `json:"fullName"`
	PhoneNumber     *string   `json:"phoneNumber"`
	Location        *string   `json:"location"`
	BusinessName    *string   `json:"businessName"`
	Bio             *string   `json:"bio"`
	Experience      *int      `json:"experience" binding:"omitempty,min=0"`
	Specializations *[]string `json:"specializations"`
	BasePrice       *float64  `json:"basePrice" binding:"omitempty,min=0"`
}

func currentUser(c *gin.Context) (*models.User, bool) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		return nil, false
	}
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return nil, false
	}
	return &user, true
}

// GetCustomerProfile returns the calling customer's profile.
func GetCustomerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user, user.ProfileCompleted)})
}

// UpdateCustomerProfile applies a partial update to the customer's identity
// fields. UserType is immutable and not accepted here.
func UpdateCustomerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateCustomerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !applyUserFields(c, user, input.FullName, input.PhoneNumber, input.Location, input.DateOfBirth) {
		return
	}
	if input.Preferences != nil {
		prefs, err := json.Marshal(*input.Preferences)
		if err == nil {
			user.Preferences = datatypes.JSON(prefs)
		}
	}

	if err := config.DB.Save(user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user, user.ProfileCompleted)})
}

func applyUserFields(c *gin.Context, user *models.User, fullName, phoneNumber, location, dateOfBirth *string) bool {
	if fullName != nil {
		user.FullName = *fullName
	}
	if phoneNumber != nil {
		if !utils.ValidatePhone(*phoneNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return false
		}
		user.PhoneNumber = *phoneNumber
	}
	if location != nil {
		user.Location = *location
	}
	if dateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *dateOfBirth)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "dateOfBirth must be in YYYY-MM-DD format")
			return false
		}
		user.DateOfBirth = &dob
	}
	return true
}

// GetPlannerProfile returns the calling planner's profile including business
// details and derived document flags.
func GetPlannerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var planner models.Planner
	if err := config.DB.First(&planner, "user_id = ?", user.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Planner profile not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":                userResponse(user, models.IsProfileComplete(user, &planner)),
		"planner":             planner,
		"hasIdCard":           user.HasIDCard(),
		"hasBirthCertificate": user.HasBirthCertificate(),
	})
}

// UpdatePlannerProfile applies a partial update to the planner's identity and
// business fields, then re-derives and persists the completion flag.
func UpdatePlannerProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var planner models.Planner
	if err := config.DB.First(&planner, "user_id = ?", user.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Planner profile not found")
		return
	}

	var input UpdatePlannerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !applyUserFields(c, user, input.FullName, input.PhoneNumber, input.Location, nil) {
		return
	}
	if input.BusinessName != nil {
		planner.BusinessName = input.BusinessName
	}
	if input.Bio != nil {
		planner.Bio = input.Bio
	}
	if input.Experience != nil {
		planner.Experience = input.Experience
	}
	if input.BasePrice != nil {
		planner.BasePrice = input.BasePrice
	}
	if input.Specializations != nil {
		specs, err := json.Marshal(*input.Specializations)
		if err == nil {
			planner.Specializations = datatypes.JSON(specs)
		}
	}

	user.ProfileCompleted = models.IsProfileComplete(user, &planner)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if err := tx.Save(&planner).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if err := tx.Model(user).Updates(map[string]interface{}{
		"full_name":         user.FullName,
		"phone_number":      user.PhoneNumber,
		"location":          user.Location,
		"profile_completed": user.ProfileCompleted,
	}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"user":    userResponse(user, user.ProfileCompleted),
		"planner": planner,
	})
}

// readUpload pulls the multipart file and sniffs its real content type.
func readUpload(c *gin.Context, maxBytes int64) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file provided")
		return nil, "", false
	}
	if fileHeader.Size > maxBytes {
		utils.RespondWithError(c, http.StatusBadRequest, "file too large")
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read file")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read file")
		return nil, "", false
	}
	if int64(len(data)) > maxBytes {
		utils.RespondWithError(c, http.StatusBadRequest, "file too large")
		return nil, "", false
	}

	return data, http.DetectContentType(data), true
}

// UploadProfileImage stores the caller's profile image.
func UploadProfileImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	data, contentType, ok := readUpload(c, utils.MaxImageUploadBytes)
	if !ok {
		return
	}
	if err := utils.ValidateImageUpload(contentType, int64(len(data))); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Model(user).Updates(map[string]interface{}{
		"profile_image":      data,
		"profile_image_type": contentType,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Profile image uploaded",
		"profileImage": "/api/users/" + user.ID.String() + "/profile-image",
	})
}

func uploadDocument(c *gin.Context, dataColumn, typeColumn string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	data, contentType, ok := readUpload(c, utils.MaxDocumentUploadBytes)
	if !ok {
		return
	}
	if err := utils.ValidateDocumentUpload(contentType, int64(len(data))); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Model(user).Updates(map[string]interface{}{
		dataColumn: data,
		typeColumn: contentType,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document uploaded"})
}

// UploadIDCard stores the planner's ID card document.
func UploadIDCard(c *gin.Context) {
	uploadDocument(c, "id_card_data", "id_card_type")
}

// UploadBirthCertificate stores the planner's birth certificate document.
func UploadBirthCertificate(c *gin.Context) {
	uploadDocument(c, "birth_certificate_data", "birth_certificate_type")
}

// GetProfileImage streams a user's profile image.
func GetProfileImage(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if len(user.ProfileImage) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No profile image")
		return
	}

	c.Data(http.StatusOK, user.ProfileImageType, user.ProfileImage)
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"eventora-backend/config"
	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RegisterInput struct {
	FullName    string   `json:"fullName" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	PhoneNumber string   `json:"phoneNumber" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	UserType    string   `json:"userType" binding:"required,oneof=customer planner"`
	Location    string   `json:"location"`
	DateOfBirth string   `json:"dateOfBirth"`
	Preferences []string `json:"preferences"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// claimsForUser builds the signed identity from the current user row.
func claimsForUser(user *models.User, profileCompleted bool) utils.Claims {
	claims := utils.Claims{
		UserID:           user.ID.String(),
		FullName:         user.FullName,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		UserType:         user.UserType,
		Location:         user.Location,
		ProfileCompleted: profileCompleted,
	}
	if user.DateOfBirth != nil {
		claims.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}
	if len(user.Preferences) > 0 {
		var prefs []string
		if err := json.Unmarshal(user.Preferences, &prefs); err == nil {
			claims.Preferences = prefs
		}
	}
	if len(user.ProfileImage) > 0 {
		claims.ProfileImage = "/api/users/" + user.ID.String() + "/profile-image"
	}
	return claims
}

func userResponse(user *models.User, profileCompleted bool) gin.H {
	resp := gin.H{
		"id":               user.ID,
		"fullName":         user.FullName,
		"email":            user.Email,
		"phoneNumber":      user.PhoneNumber,
		"userType":         user.UserType,
		"location":         user.Location,
		"dateOfBirth":      user.DateOfBirth,
		"preferences":      user.Preferences,
		"profileCompleted": profileCompleted,
	}
	if len(user.ProfileImage) > 0 {
		resp["profileImage"] = "/api/users/" + user.ID.String() + "/profile-image"
	}
	return resp
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ?", strings.ToLower(input.Email)).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		FullName:    input.FullName,
		Email:       strings.ToLower(input.Email),
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password, // hashed in BeforeCreate hook
		UserType:    input.UserType,
		Location:    input.Location,
		// customers have no completion requirement
		ProfileCompleted: input.UserType == models.UserTypeCustomer,
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "dateOfBirth must be in YYYY-MM-DD format")
			return
		}
		newUser.DateOfBirth = &dob
	}
	if len(input.Preferences) > 0 {
		prefs, err := json.Marshal(input.Preferences)
		if err == nil {
			newUser.Preferences = datatypes.JSON(prefs)
		}
	}

	// Planner registration cascades to a planner profile row
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		// lost the race on the unique email index, or a real failure
		utils.RespondWithError(c, http.StatusBadRequest, utils.TranslateDBError(err))
		return
	}

	if newUser.UserType == models.UserTypePlanner {
		planner := models.Planner{UserID: newUser.ID}
		if err := tx.Create(&planner).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create planner profile")
			return
		}
	}

	tx.Commit()

	token, err := utils.GenerateToken(claimsForUser(&newUser, newUser.ProfileCompleted))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.SetAuthCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    userResponse(&newUser, newUser.ProfileCompleted),
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	profileCompleted := refreshProfileCompleted(&user)

	token, err := utils.GenerateToken(claimsForUser(&user, profileCompleted))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	utils.SetAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse(&user, profileCompleted),
	})
}

func Logout(c *gin.Context) {
	utils.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// refreshProfileCompleted re-derives completeness from the store and heals
// the persisted flag when it has drifted. Customers are always complete.
func refreshProfileCompleted(user *models.User) bool {
	if user.UserType != models.UserTypePlanner {
		return true
	}

	var planner models.Planner
	if err := config.DB.First(&planner, "user_id = ?", user.ID).Error; err != nil {
		return false
	}

	completed := models.IsProfileComplete(user, &planner)
	if completed != user.ProfileCompleted {
		config.DB.Model(user).Update("profile_completed", completed)
		user.ProfileCompleted = completed
	}
	return completed
}

// Status reports the current session. The cookie is optional; a valid one is
// refreshed with freshly derived claims on every call.
func Status(c *gin.Context) {
	tokenString, err := c.Cookie(utils.AuthCookie)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	profileCompleted := refreshProfileCompleted(&user)

	// Sliding refresh
	token, err := utils.GenerateToken(claimsForUser(&user, profileCompleted))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.SetAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          userResponse(&user, profileCompleted),
	})
}

package middleware

import (
	"net/http"
	"strings"

	"eventora-backend/config"
	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const IdentityKey = "identity"

// tokenFromRequest prefers the credential cookie, falling back to a bearer
// header for non-browser clients.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.AuthCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[0:6], "BEARER") {
		return header[7:]
	}
	return ""
}

// AuthRequired verifies the credential and attaches the decoded identity to
// the request context. The identity is set once here and treated as
// read-only downstream.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(IdentityKey, claims)
		c.Next()
	}
}

// Identity returns the decoded claims attached by AuthRequired.
func Identity(c *gin.Context) (*utils.Claims, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

// RequireRole rejects callers whose user type does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if claims.UserType != role {
			utils.RespondWithError(c, http.StatusForbidden, "Access restricted to "+role+" accounts")
			return
		}
		c.Next()
	}
}

// RequireOwnership re-attaches the identity; per-resource ownership is
// checked in the handlers that load the resource.
func RequireOwnership() gin.HandlerFunc {
	return AuthRequired()
}

// RequireCompleteProfile gates planner operations behind a complete profile.
// Completeness is always re-derived from the store, never trusted from the
// token or the persisted flag.
func RequireCompleteProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if claims.UserType != models.UserTypePlanner {
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		var user models.User
		if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
			return
		}
		var planner models.Planner
		if err := config.DB.First(&planner, "user_id = ?", userID).Error; err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Planner profile not found")
			return
		}

		if !models.IsProfileComplete(&user, &planner) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":             "Complete your profile before accessing this feature",
				"profileIncomplete": true,
			})
			return
		}

		c.Next()
	}
}

package controllers

import (
	"net/http"

	"eventora-backend/middleware"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentIdentity pulls the authenticated identity from the request context
// and parses its user id. Aborts with 401 when either is missing.
func currentIdentity(c *gin.Context) (uuid.UUID, *utils.Claims, bool) {
	claims, ok := middleware.Identity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token")
		return uuid.Nil, nil, false
	}
	return userID, claims, true
}

// utils/auth.go
package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenIssuer   = "eventora-backend"
	TokenAudience = "eventora-web"
	AuthCookie    = "token"
)

// Claims carries the full signed identity so handlers rarely need a user
// lookup just to know who is calling.
type Claims struct {
	UserID           string   `json:"id"`
	FullName         string   `json:"fullName"`
	Email            string   `json:"email"`
	PhoneNumber      string   `json:"phoneNumber"`
	UserType         string   `json:"userType"`
	Location         string   `json:"location"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	Preferences      []string `json:"preferences,omitempty"`
	ProfileImage     string   `json:"profileImage,omitempty"`
	ProfileCompleted bool     `json:"profileCompleted"`
	jwt.RegisteredClaims
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// TokenExpiry returns the configured token lifetime, default 7 days.
func TokenExpiry() time.Duration {
	expiryHours := 168
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	return time.Duration(expiryHours) * time.Hour
}

// GenerateToken signs the given identity claims with issuer, audience and
// expiry filled in.
func GenerateToken(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		Issuer:    TokenIssuer,
		Audience:  jwt.ClaimStrings{TokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry())),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature, issuer and audience and returns the
// decoded identity.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithAudience(TokenAudience))

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// cookieSecure decides whether the credential cookie carries the Secure
// attribute. COOKIE_SECURE overrides explicitly; otherwise the cookie is
// Secure in release mode and plain for local HTTP development.
func cookieSecure() bool {
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		return v == "true"
	}
	return os.Getenv("GIN_MODE") == "release"
}

// SetAuthCookie writes the HTTP-only credential cookie.
func SetAuthCookie(c *gin.Context, token string) {
	maxAge := int(TokenExpiry().Seconds())
	c.SetCookie(AuthCookie, token, maxAge, "/", "", cookieSecure(), true)
}

// ClearAuthCookie expires the credential cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(AuthCookie, "", -1, "/", "", cookieSecure(), true)
}

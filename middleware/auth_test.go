package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})

	r.GET("/planner-only", AuthRequired(), RequireRole(models.UserTypePlanner), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func signTestToken(t *testing.T, userType string) string {
	t.Helper()
	token, err := utils.GenerateToken(utils.Claims{
		UserID:   "4f5e6d7c-0000-4a4a-8b8b-1c1c1c1c1c1c",
		UserType: userType,
	})
	require.NoError(t, err)
	return token
}

func TestAuthRequiredWithoutToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthRequiredWithCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookie, Value: signTestToken(t, models.UserTypeCustomer)})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "4f5e6d7c")
}

func TestAuthRequiredWithBearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, models.UserTypeCustomer))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAuthRequiredWithGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookie, Value: "garbage"})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireRoleMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/planner-only", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookie, Value: signTestToken(t, models.UserTypeCustomer)})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestRequireRoleMatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/planner-only", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookie, Value: signTestToken(t, models.UserTypePlanner)})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

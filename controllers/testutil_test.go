package controllers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"eventora-backend/config"
	"eventora-backend/middleware"
	"eventora-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB swaps the shared gorm handle for one backed by sqlmock so
// handler flows can be exercised without a database. Expectations double as
// assertions that no write beyond the expected ones was issued.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:             db,
		WithoutReturning: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	config.DB = gdb
	t.Cleanup(func() {
		config.DB = nil
		db.Close()
	})
	return mock
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", Register)
	r.GET("/api/auth/status", Status)

	api := r.Group("/api", middleware.AuthRequired())
	api.DELETE("/bookings/:id", DeleteBooking)
	api.POST("/reviews", CreateReview)
	api.POST("/planner/bookings/:id/accept", AcceptBooking)
	api.POST("/planner/bookings/:id/reject", RejectBooking)
	return r
}

func bearerFor(t *testing.T, userID uuid.UUID, userType string) string {
	t.Helper()
	token, err := utils.GenerateToken(utils.Claims{
		UserID:   userID.String(),
		FullName: "Test User",
		UserType: userType,
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(r *gin.Engine, method, path, authorization, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingRows(id, customerID, plannerID uuid.UUID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "planner_id", "customer_name", "status"}).
		AddRow(id.String(), customerID.String(), plannerID.String(), "Test Customer", status)
}

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventora-backend/models"
	"eventora-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)
	r := testRouter()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(uuid.New().String(), "taken@example.com"))

	body := `{"fullName":"New User","email":"taken@example.com","phoneNumber":"+15551234567",` +
		`"password":"supersecret","userType":"customer"}`
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusHealsStaleProfileFlag(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)
	r := testRouter()

	userID := uuid.New()

	// the stored flag says complete, but the planner row has no business
	// details and the user carries no verification documents
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "full_name", "email", "user_type", "profile_completed"}).
			AddRow(userID.String(), "Ada Planner", "ada@example.com", models.UserTypePlanner, true))
	mock.ExpectQuery(`SELECT \* FROM "planners" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(uuid.New().String(), userID.String()))
	mock.ExpectExec(`UPDATE "users" SET "profile_completed"`).
		WithArgs(false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	token, err := utils.GenerateToken(utils.Claims{
		UserID:           userID.String(),
		UserType:         models.UserTypePlanner,
		ProfileCompleted: true,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"profileCompleted":false`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusWithoutCookie(t *testing.T) {
	setupMockDB(t)
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

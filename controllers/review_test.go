package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"eventora-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateReviewRecomputesAggregate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)
	r := testRouter()

	customerID := uuid.New()
	plannerID := uuid.New()
	bookingID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id =`).
		WillReturnRows(bookingRows(bookingID, customerID, plannerID, models.BookingStatusCompleted))
	mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE booking_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "reviews"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// the aggregate is rebuilt from the source rows inside the same
	// transaction: with a second review on file the store reports the mean
	// of both, and exactly those values must land on the planner row
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) AS average, COUNT\(\*\) AS total FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"average", "total"}).AddRow(4.5, 2))
	mock.ExpectExec(`UPDATE "planners" SET`).
		WithArgs(4.5, 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectExec(`INSERT INTO "notifications"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := fmt.Sprintf(`{"bookingId":%q,"rating":5,"comment":"Great event"}`, bookingID.String())
	w := doJSON(r, http.MethodPost, "/api/reviews",
		bearerFor(t, customerID, models.UserTypeCustomer), body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewDuplicateRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)
	r := testRouter()

	customerID := uuid.New()
	bookingID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id =`).
		WillReturnRows(bookingRows(bookingID, customerID, uuid.New(), models.BookingStatusCompleted))
	mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE booking_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	body := fmt.Sprintf(`{"bookingId":%q,"rating":4}`, bookingID.String())
	w := doJSON(r, http.MethodPost, "/api/reviews",
		bearerFor(t, customerID, models.UserTypeCustomer), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already been reviewed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewNotCompletedRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)
	r := testRouter()

	customerID := uuid.New()
	bookingID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id =`).
		WillReturnRows(bookingRows(bookingID, customerID, uuid.New(), models.BookingStatusConfirmed))

	body := fmt.Sprintf(`{"bookingId":%q,"rating":4}`, bookingID.String())
	w := doJSON(r, http.MethodPost, "/api/reviews",
		bearerFor(t, customerID, models.UserTypeCustomer), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

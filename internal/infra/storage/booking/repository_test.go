package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return db, mock, func() { db.Close() }
}

func TestCreateReturnsCreatedAt(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	createdAt := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	booking := &domain.Booking{
		UserID:   "user-1",
		SlotID:   "2025-10-06-s1",
		SlotDate: time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		SlotTime: "1:45 PM - 2:15 PM",
	}

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "missing ID must be generated")
	require.Equal(t, domain.StatusConfirmed, created.Status)
	require.Equal(t, createdAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMapsUniqueViolations(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{constraintSlotUnique, ErrSlotTaken},
		{constraintUserUnique, ErrUserAlreadyBooked},
	}

	for _, tc := range cases {
		db, mock, cleanup := newMock(t)

		repo := NewRepository(db)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: tc.constraint})

		_, err := repo.Create(context.Background(), &domain.Booking{
			UserID: "user-1",
			SlotID: "2025-10-06-s1",
		})
		require.ErrorIs(t, err, tc.want, "constraint=%s", tc.constraint)
		require.NoError(t, mock.ExpectationsWereMet())

		cleanup()
	}
}

func TestGetActiveByUserIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, slot_id, slot_date, slot_time, status, created_at FROM bookings")).
		WithArgs("confirmed", "user-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetActiveByUserID(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveBySlotID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	rows := sqlmock.NewRows([]string{"id", "user_id", "slot_id", "slot_date", "slot_time", "status", "created_at"}).
		AddRow("booking-1", "user-1", "2025-10-06-s1",
			time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), "1:45 PM - 2:15 PM", "confirmed", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, slot_id, slot_date, slot_time, status, created_at FROM bookings")).
		WillReturnRows(rows)

	booking, err := repo.GetActiveBySlotID(context.Background(), "2025-10-06-s1")
	require.NoError(t, err)
	require.Equal(t, "booking-1", booking.ID)
	require.Equal(t, domain.StatusConfirmed, booking.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllActiveJoinsUsers(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	lead := "Bob"
	project := "Drone Swarm"

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "slot_id", "slot_date", "slot_time", "status", "created_at",
		"name", "roll_no", "department", "email", "year",
		"team_lead_name", "team_lead_roll_no", "project_name",
	}).AddRow(
		"booking-1", "user-1", "2025-10-06-s1",
		time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), "1:45 PM - 2:15 PM", "confirmed", time.Now(),
		"Alice", "CS-042", "CSE", "alice@example.com", "3rd Year",
		&lead, nil, &project,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b JOIN users u ON u.id = b.user_id")).
		WillReturnRows(rows)

	bookings, err := repo.GetAllActive(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.Equal(t, "Alice", bookings[0].UserName)
	require.Equal(t, "Bob", *bookings[0].TeamLeadName)
	require.Nil(t, bookings[0].TeamLeadRollNo)
	require.Equal(t, "Drone Swarm", *bookings[0].ProjectName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).
		WithArgs("booking-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "booking-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

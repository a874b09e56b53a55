package user

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

func TestCreateGeneratesIDAndTimestamps(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.User{
		Name:       "Alice",
		RollNo:     "CS-042",
		Department: "CSE",
		Email:      "alice@example.com",
		Year:       "3rd Year",
		Password:   "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMapsUniqueViolations(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{"uq_users_roll_no", ErrRollNoTaken},
		{"uq_users_email", ErrEmailTaken},
		{"users_pkey", ErrDuplicate},
	}

	for _, tc := range cases {
		db, mock, cleanup := newMock(t)

		repo := NewRepository(db)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: tc.constraint})

		_, err := repo.Create(context.Background(), &domain.User{Email: "alice@example.com"})
		require.ErrorIs(t, err, tc.want, "constraint=%s", tc.constraint)
		require.NoError(t, mock.ExpectationsWereMet())

		cleanup()
	}
}

func TestGetByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "name", "roll_no", "department", "email", "year", "password",
		"team_lead_name", "team_lead_roll_no", "project_name", "team_members",
		"created_at", "updated_at",
	}).AddRow(
		"user-1", "Alice", "CS-042", "CSE", "alice@example.com", "3rd Year", "secret",
		nil, nil, nil, []byte(`[{"name":"Bob","rollNo":"CS-043"}]`),
		now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Len(t, user.TeamMembers, 1)
	require.Equal(t, "Bob", user.TeamMembers[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTeamProfileNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	lead := "Bob"
	err := repo.UpdateTeamProfile(context.Background(), "missing", domain.TeamProfile{TeamLeadName: &lead})
	require.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTeamMembers(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET team_members")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTeamMembers(context.Background(), "user-1", []domain.TeamMember{
		{Name: "Bob", RollNo: "CS-043"},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

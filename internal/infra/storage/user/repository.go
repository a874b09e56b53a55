package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/IRP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

const userColumns = "id, name, roll_no, department, email, year, password, " +
	"team_lead_name, team_lead_roll_no, project_name, team_members, created_at, updated_at"

// Create создает нового пользователя
// При конфликте уникальности roll_no / email возвращает ErrRollNoTaken / ErrEmailTaken
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	members, err := json.Marshal(user.TeamMembers)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal team members: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"id",
			"name",
			"roll_no",
			"department",
			"email",
			"year",
			"password",
			"team_lead_name",
			"team_lead_roll_no",
			"project_name",
			"team_members",
		).
		Values(
			user.ID,
			user.Name,
			user.RollNo,
			user.Department,
			user.Email,
			user.Year,
			user.Password,
			user.TeamLeadName,
			user.TeamLeadRollNo,
			user.ProjectName,
			members,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return user, nil
}

// GetByEmail получает пользователя по email (для входа в систему)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// UpdateTeamProfile обновляет данные команды пользователя
// Вызывается при оформлении бронирования, чтобы сетка показывала название проекта
func (r *Repository) UpdateTeamProfile(ctx context.Context, userID string, profile domain.TeamProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("team_lead_name", profile.TeamLeadName).
		Set("team_lead_roll_no", profile.TeamLeadRollNo).
		Set("project_name", profile.ProjectName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTeamProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTeamProfile - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTeamProfile - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateTeamMembers обновляет состав команды пользователя
func (r *Repository) UpdateTeamMembers(ctx context.Context, userID string, members []domain.TeamMember) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("%w: UpdateTeamMembers - marshal team members: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Update("users").
		Set("team_members", payload).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTeamMembers - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTeamMembers - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTeamMembers - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var user domain.User
	var members []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.RollNo,
		&user.Department,
		&user.Email,
		&user.Year,
		&user.Password,
		&user.TeamLeadName,
		&user.TeamLeadRollNo,
		&user.ProjectName,
		&members,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	if len(members) > 0 {
		if err := json.Unmarshal(members, &user.TeamMembers); err != nil {
			return nil, fmt.Errorf("%w: %s - unmarshal team members: %v", ErrScanRow, op, err)
		}
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}

// mapConstraintError преобразует нарушение уникальности в доменную ошибку хранилища
// Имена ограничений покрывают и явные constraint'ы миграций, и автоимена Postgres.
func mapConstraintError(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != "23505" {
		return nil
	}

	switch {
	case strings.Contains(pqErr.Constraint, "roll_no"):
		return ErrRollNoTaken
	case strings.Contains(pqErr.Constraint, "email"):
		return ErrEmailTaken
	}

	return ErrDuplicate
}

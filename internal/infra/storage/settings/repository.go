package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/IRP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками системы
// Настройки хранятся в единственной строке таблицы admin_settings
// с фиксированным ID (domain.SettingsRowID)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущее состояние системы
// Если строки нет (свежая база), создает её со значением system_active = true
func (r *Repository) Get(ctx context.Context) (*domain.SystemStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"system_active",
		"auto_deactivate_at",
		"updated_at",
	).
		From("admin_settings").
		Where(squirrel.Eq{"id": domain.SettingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var status domain.SystemStatus
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&status.ID,
		&status.SystemActive,
		&status.AutoDeactivateAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return r.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	status.UpdatedAt = updatedAt.Time

	return &status, nil
}

// SetActive включает или выключает систему бронирования
func (r *Repository) SetActive(ctx context.Context, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_settings").
		Set("system_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": domain.SettingsRowID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, query, args, "SetActive")
}

// SetAutoDeactivateAt устанавливает время автоотключения системы
func (r *Repository) SetAutoDeactivateAt(ctx context.Context, deadline time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_settings").
		Set("auto_deactivate_at", deadline).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": domain.SettingsRowID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAutoDeactivateAt - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, query, args, "SetAutoDeactivateAt")
}

// ClearTimer сбрасывает таймер автоотключения
// Флаг system_active не трогает: отмена таймера оставляет систему в текущем состоянии
func (r *Repository) ClearTimer(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_settings").
		Set("auto_deactivate_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": domain.SettingsRowID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ClearTimer - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, query, args, "ClearTimer")
}

// Deactivate выключает систему и сбрасывает таймер одним запросом
// Используется при срабатывании таймера автоотключения
func (r *Repository) Deactivate(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_settings").
		Set("system_active", false).
		Set("auto_deactivate_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": domain.SettingsRowID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, query, args, "Deactivate")
}

// seed создает строку настроек по умолчанию
func (r *Repository) seed(ctx context.Context) (*domain.SystemStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_settings").
		Columns("id", "system_active").
		Values(domain.SettingsRowID, true).
		Suffix("ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id RETURNING id, system_active, auto_deactivate_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: seed - build insert query: %v", ErrBuildQuery, err)
	}

	var status domain.SystemStatus
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&status.ID,
		&status.SystemActive,
		&status.AutoDeactivateAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: seed - execute insert: %v", ErrExecQuery, err)
	}

	status.UpdatedAt = updatedAt.Time

	return &status, nil
}

func (r *Repository) execOne(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

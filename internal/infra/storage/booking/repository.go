package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/IRP-BookingService/pkg/psqlbuilder"
)

// Уникальные индексы, защищающие от гонок при бронировании
const (
	constraintSlotUnique = "uq_bookings_active_slot"
	constraintUserUnique = "uq_bookings_active_user"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// При конфликте с уникальными индексами (слот уже занят или у пользователя уже есть
// активное бронирование) возвращает типизированные ошибки ErrSlotTaken / ErrUserAlreadyBooked.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.Status == "" {
		booking.Status = domain.StatusConfirmed
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"slot_id",
			"slot_date",
			"slot_time",
			"status",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.SlotID,
			booking.SlotDate,
			booking.SlotTime,
			booking.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"slot_id",
		"slot_date",
		"slot_time",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SlotID,
		&booking.SlotDate,
		&booking.SlotTime,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetActiveByUserID получает активное бронирование пользователя
// Возвращает ErrBookingNotFound, если активного бронирования нет
func (r *Repository) GetActiveByUserID(ctx context.Context, userID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"slot_id",
		"slot_date",
		"slot_time",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID, "status": domain.StatusConfirmed})

	// Если используется транзакция, добавляем FOR UPDATE для блокировки
	// (usecase создания бронирования проверяет отсутствие активной брони)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SlotID,
		&booking.SlotDate,
		&booking.SlotTime,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetActiveBySlotID получает активное бронирование слота
// Возвращает ErrBookingNotFound, если слот свободен
func (r *Repository) GetActiveBySlotID(ctx context.Context, slotID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"slot_id",
		"slot_date",
		"slot_time",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID, "status": domain.StatusConfirmed})

	// Если используется транзакция, добавляем FOR UPDATE для блокировки
	// (usecase создания бронирования проверяет занятость слота)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SlotID,
		&booking.SlotDate,
		&booking.SlotTime,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlotID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetAllActive получает все активные бронирования вместе с данными пользователей
// Используется для админской таблицы и для сборки сетки слотов
func (r *Repository) GetAllActive(ctx context.Context) ([]*domain.BookingWithUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.slot_id",
		"b.slot_date",
		"b.slot_time",
		"b.status",
		"b.created_at",
		"u.name",
		"u.roll_no",
		"u.department",
		"u.email",
		"u.year",
		"u.team_lead_name",
		"u.team_lead_roll_no",
		"u.project_name",
	).
		From("bookings b").
		Join("users u ON u.id = b.user_id").
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
		OrderBy("b.slot_date ASC, b.slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.BookingWithUser, 0)

	for rows.Next() {
		var booking domain.BookingWithUser
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.SlotID,
			&booking.SlotDate,
			&booking.SlotTime,
			&booking.Status,
			&createdAt,
			&booking.UserName,
			&booking.UserRollNo,
			&booking.UserDepartment,
			&booking.UserEmail,
			&booking.UserYear,
			&booking.TeamLeadName,
			&booking.TeamLeadRollNo,
			&booking.ProjectName,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetAllActive - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Delete удаляет бронирование (физическое удаление, освобождает слот)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// mapConstraintError преобразует нарушение уникального индекса в доменную ошибку хранилища
func mapConstraintError(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != "23505" {
		return nil
	}

	switch pqErr.Constraint {
	case constraintSlotUnique:
		return ErrSlotTaken
	case constraintUserUnique:
		return ErrUserAlreadyBooked
	}

	return nil
}

package eventconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/IRP-BookingService/pkg/psqlbuilder"
)

// Конфигурация мероприятия хранится единственной JSONB строкой
const rowID = 1

// Repository репозиторий для работы с конфигурацией мероприятия
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущую конфигурацию мероприятия
// Возвращает ErrConfigNotFound, если строка ещё не создана (см. Seed)
func (r *Repository) Get(ctx context.Context) (*domain.EventConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("payload").
		From("event_config").
		Where(squirrel.Eq{"id": rowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	var cfg domain.EventConfig
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal config: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// Save сохраняет конфигурацию мероприятия, перезаписывая текущую
func (r *Repository) Save(ctx context.Context, cfg *domain.EventConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal config: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("event_config").
		Columns("id", "payload").
		Values(rowID, payload).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Seed записывает конфигурацию по умолчанию, если строки ещё нет
// Существующую конфигурацию не трогает
func (r *Repository) Seed(ctx context.Context, cfg *domain.EventConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: Seed - marshal config: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("event_config").
		Columns("id", "payload").
		Values(rowID, payload).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Mailer   MailerConfig   `toml:"mailer"`
	Event    EventConfig    `toml:"event"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки сессионных токенов
type AuthConfig struct {
	JWTSecret          string `toml:"jwt_secret"`
	UserTokenTTLHours  int    `toml:"user_token_ttl_hours"`
	AdminTokenTTLHours int    `toml:"admin_token_ttl_hours"`
}

// MailerConfig настройки клиента почтового relay-сервиса
type MailerConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// EventConfig дефолтная конфигурация события
// Используется для первичного заполнения строки event_config в БД;
// дальше конфигурация редактируется администратором через API
type EventConfig struct {
	Title        string              `toml:"title"`
	Subtitle     string              `toml:"subtitle"`
	Description  string              `toml:"description"`
	Dates        []string            `toml:"dates"`
	Slots        []EventSlotTemplate `toml:"slots"`
	WindowStart  string              `toml:"enrollment_window_start"`
	WindowEnd    string              `toml:"enrollment_window_end"`
	Instructions []string            `toml:"instructions"`
}

// EventSlotTemplate шаблон слота в TOML конфигурации
type EventSlotTemplate struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

// ToDomain конвертирует TOML-секцию события в доменную конфигурацию
func (e *EventConfig) ToDomain() *domain.EventConfig {
	slots := make([]domain.SlotTemplate, 0, len(e.Slots))
	for _, s := range e.Slots {
		slots = append(slots, domain.SlotTemplate{ID: s.ID, Label: s.Label})
	}

	cfg := &domain.EventConfig{
		Title:        e.Title,
		Subtitle:     e.Subtitle,
		Description:  e.Description,
		Dates:        e.Dates,
		DefaultSlots: slots,
		Instructions: e.Instructions,
	}

	if e.WindowStart != "" && e.WindowEnd != "" {
		cfg.GlobalWindow = &domain.EnrollmentWindow{
			Start: types.TimeString(e.WindowStart),
			End:   types.TimeString(e.WindowEnd),
		}
	}

	return cfg
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Auth.UserTokenTTLHours == 0 {
		cfg.Auth.UserTokenTTLHours = 24
	}
	if cfg.Auth.AdminTokenTTLHours == 0 {
		cfg.Auth.AdminTokenTTLHours = 8
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwt_secret is required")
	}

	if err := cfg.Event.ToDomain().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

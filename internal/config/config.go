// Package config загружает конфигурацию сервиса из TOML-файла и переменных окружения
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/pkg/timegrid"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	StaffService StaffServiceConfig `toml:"staff_service"`
	Scheduling   SchedulingConfig   `toml:"scheduling"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StaffServiceConfig параметры клиента StaffService
type StaffServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SchedulingConfig значения расписания по умолчанию, если для локации нет записи в БД
type SchedulingConfig struct {
	StepMinutes             int    `toml:"step_minutes"`
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes"`
	AdvanceBookingDays      int    `toml:"advance_booking_days"`
	TimeZone                string `toml:"time_zone"`
}

// Load читает .env (если есть), TOML-файл и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-chain-booking",
		},
		StaffService: StaffServiceConfig{
			Timeout: 5,
		},
		Scheduling: SchedulingConfig{
			StepMinutes:             domain.DefaultStepMinutes,
			MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
			AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
			TimeZone:                domain.DefaultTimeZone,
		},
	}
}

// applyEnv переопределяет значения переменными окружения
func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
		}
		*dst = n
		return nil
	}

	setString("DB_HOST", &c.Database.Host)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.DBName)
	setString("STAFF_SERVICE_URL", &c.StaffService.URL)
	setString("LOG_LEVEL", &c.Logs.Level)

	if err := setInt("DB_PORT", &c.Database.Port); err != nil {
		return err
	}
	if err := setInt("HTTP_PORT", &c.Server.HTTPPort); err != nil {
		return err
	}

	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port must be between 1 and 65535", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.StaffService.URL == "" {
		return fmt.Errorf("%w: staff_service.url is required", ErrInvalidConfig)
	}
	if c.StaffService.Timeout <= 0 {
		return fmt.Errorf("%w: staff_service.timeout must be positive", ErrInvalidConfig)
	}

	s := c.Scheduling
	if s.StepMinutes < domain.MinStepMinutes || s.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: scheduling.step_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if err := timegrid.ValidateStep(domain.MinutesToDuration(s.StepMinutes)); err != nil {
		return fmt.Errorf("%w: scheduling.step_minutes: %w", ErrInvalidConfig, err)
	}
	if s.MinBookingNoticeMinutes < 0 || s.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: scheduling.min_booking_notice_minutes must be between 0 and %d",
			ErrInvalidConfig, domain.MaxBookingNoticeMinutes)
	}
	if s.AdvanceBookingDays < 0 || s.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: scheduling.advance_booking_days must be between 0 and %d",
			ErrInvalidConfig, domain.MaxAdvanceBookingDays)
	}
	if _, err := time.LoadLocation(s.TimeZone); err != nil {
		return fmt.Errorf("%w: scheduling.time_zone: %v", ErrInvalidConfig, err)
	}

	return nil
}

package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией расписания локаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation получает конфигурацию конкретной локации.
// Если locationID == nil, ищет глобальную конфигурацию (location_id IS NULL)
func (r *Repository) GetByLocation(ctx context.Context, locationID *int64) (*domain.LocationSlotsConfig, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"location_id",
		"step_minutes",
		"min_booking_notice_minutes",
		"advance_booking_days",
		"time_zone",
		"created_at",
		"updated_at",
	).
		From("location_slots_config")

	// Фильтрация по location_id (NULL или конкретное значение)
	if locationID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_id": *locationID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.LocationSlotsConfig
	var storedLocationID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&storedLocationID,
		&config.StepMinutes,
		&config.MinBookingNoticeMinutes,
		&config.AdvanceBookingDays,
		&config.TimeZone,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - scan config: %v", ErrScanRow, err)
	}

	if storedLocationID.Valid {
		id := storedLocationID.Int64
		config.LocationID = &id
	}
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Конфигурация конкретной локации
// 2. Глобальная конфигурация (location_id IS NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error) {
	// 1. Пробуем получить конфигурацию локации
	config, err := r.GetByLocation(ctx, &locationID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (location): %v", ErrExecQuery, err)
	}

	// 2. Пробуем получить глобальную конфигурацию
	config, err = r.GetByLocation(ctx, nil)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (global): %v", ErrExecQuery, err)
	}

	// Если конфигурация не найдена ни на одном уровне
	return nil, ErrConfigNotFound
}

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	configRepo "github.com/m04kA/SMC-ChainBookingService/internal/infra/storage/config"
	"github.com/m04kA/SMC-ChainBookingService/internal/service/config/models"
	"github.com/m04kA/SMC-ChainBookingService/pkg/timegrid"
)

// Defaults значения по умолчанию, если для локации нет ни одной записи
type Defaults struct {
	StepMinutes             int
	MinBookingNoticeMinutes int
	AdvanceBookingDays      int
	TimeZone                string
}

// Service сервис действующей конфигурации расписания
type Service struct {
	configRepo ConfigRepository
	defaults   Defaults
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, defaults Defaults, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		defaults:   defaults,
		logger:     logger,
	}
}

// GetEffectiveConfig возвращает конфигурацию локации с учетом иерархии
// (локация -> глобальная -> значения по умолчанию)
func (s *Service) GetEffectiveConfig(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error) {
	config, _, err := s.resolve(ctx, locationID)
	return config, err
}

// GetLocationConfig возвращает действующую конфигурацию вместе с уровнем, откуда она взята
func (s *Service) GetLocationConfig(ctx context.Context, locationID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetLocationConfig: fetching config for location=%d", locationID)

	config, source, err := s.resolve(ctx, locationID)
	if err != nil {
		return nil, err
	}

	return models.FromDomain(locationID, config, source), nil
}

func (s *Service) resolve(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, string, error) {
	// 1. Ищем конфигурацию в БД
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, locationID)
	source := models.SourceLocation

	switch {
	case errors.Is(err, configRepo.ErrConfigNotFound):
		// 2. Ни одной записи нет: используем значения из конфигурации приложения
		config = s.defaultConfig()
		source = models.SourceDefault
	case err != nil:
		s.logger.Error("GetEffectiveConfig: failed to get config for location=%d: %v", locationID, err)
		return nil, "", fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
	case config.IsGlobalConfig():
		source = models.SourceGlobal
	}

	// 3. Проверяем значения: битая запись не должна ломать сетку молча
	if err := validateConfig(config); err != nil {
		s.logger.Error("GetEffectiveConfig: invalid %s config for location=%d: %v", source, locationID, err)
		return nil, "", err
	}

	return config, source, nil
}

func (s *Service) defaultConfig() *domain.LocationSlotsConfig {
	config := &domain.LocationSlotsConfig{
		StepMinutes:             s.defaults.StepMinutes,
		MinBookingNoticeMinutes: s.defaults.MinBookingNoticeMinutes,
		AdvanceBookingDays:      s.defaults.AdvanceBookingDays,
		TimeZone:                s.defaults.TimeZone,
	}
	if config.StepMinutes == 0 {
		config.StepMinutes = domain.DefaultStepMinutes
	}
	if config.TimeZone == "" {
		config.TimeZone = domain.DefaultTimeZone
	}
	return config
}

// validateConfig валидирует параметры конфигурации
func validateConfig(config *domain.LocationSlotsConfig) error {
	// Проверяем шаг сетки
	if config.StepMinutes < domain.MinStepMinutes || config.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d",
			ErrInvalidConfig, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if err := timegrid.ValidateStep(config.Step()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Проверяем minBookingNoticeMinutes
	if config.MinBookingNoticeMinutes < 0 || config.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between 0 and %d",
			ErrInvalidConfig, domain.MaxBookingNoticeMinutes)
	}

	// Проверяем advanceBookingDays
	if config.AdvanceBookingDays < 0 || config.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between 0 and %d",
			ErrInvalidConfig, domain.MaxAdvanceBookingDays)
	}

	// Проверяем часовой пояс
	if _, err := config.Location(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

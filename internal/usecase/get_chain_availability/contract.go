package get_chain_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
)

// ServiceCatalog интерфейс каталога услуг и мастеров
type ServiceCatalog interface {
	// GetServiceInfo возвращает длительность активной услуги локации
	GetServiceInfo(ctx context.Context, serviceID, locationID int64) (*domain.ServiceInfo, error)
	// GetEligibleStaff возвращает активных мастеров локации, назначенных на услугу
	GetEligibleStaff(ctx context.Context, serviceID, locationID int64) ([]int64, error)
}

// StaffAvailabilityProvider интерфейс расчёта доступности одного мастера
type StaffAvailabilityProvider interface {
	// GetStaffAvailability возвращает моменты, в которые мастер может начать работу
	GetStaffAvailability(ctx context.Context, staffID, locationID int64, date time.Time) ([]time.Time, error)
}

// ConfigProvider интерфейс получения действующей конфигурации локации
type ConfigProvider interface {
	GetEffectiveConfig(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error)
}

// MetricsRecorder интерфейс для записи метрик подбора
type MetricsRecorder interface {
	ObserveChainResolution(outcome string, plans int, duration time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NoopMetrics используется, когда метрики выключены
type NoopMetrics struct{}

func (NoopMetrics) ObserveChainResolution(string, int, time.Duration) {}

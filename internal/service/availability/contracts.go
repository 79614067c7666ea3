package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/internal/integrations/staffservice"
)

// ConfigProvider интерфейс получения действующей конфигурации локации
type ConfigProvider interface {
	GetEffectiveConfig(ctx context.Context, locationID int64) (*domain.LocationSlotsConfig, error)
}

// StaffScheduleClient интерфейс клиента StaffService
type StaffScheduleClient interface {
	GetStaffSchedule(ctx context.Context, staffID, locationID int64, date time.Time) (*staffservice.DaySchedule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetStaffBookings(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

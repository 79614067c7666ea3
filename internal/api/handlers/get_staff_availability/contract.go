package get_staff_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetDayAvailability(ctx context.Context, staffID, locationID int64, date time.Time) (*models.StaffAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

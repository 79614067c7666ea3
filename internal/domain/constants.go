package domain

import "time"

// Default scheduling values, used when a location has no config row
const (
	DefaultStepMinutes             = 15
	DefaultMinBookingNoticeMinutes = 0
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
	DefaultTimeZone                = "UTC"
)

// Business validation constants
const (
	MinStepMinutes          = 5
	MaxStepMinutes          = 60
	MaxAdvanceBookingDays   = 365   // 1 year
	MaxBookingNoticeMinutes = 10080 // 1 week
	MaxChainSteps           = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Такие бронирования не занимают время мастера
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByCompany,
	StatusNoShow,
}

// MinutesToDuration переводит минуты из конфигурации в time.Duration
func MinutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}

package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusInProgress         BookingStatus = "in_progress"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingStatus = "cancelled_by_company"
	StatusNoShow             BookingStatus = "no_show"
)

// Booking is an existing appointment that occupies a staff member's time
type Booking struct {
	ID         int64
	StaffID    int64
	LocationID int64
	ServiceID  int64
	StartsAt   time.Time // UTC
	EndsAt     time.Time // UTC
	Status     BookingStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByCompany &&
		b.Status != StatusNoShow
}

// Overlaps reports whether the booking intersects [from, to).
// Touching intervals (booking ends exactly at from) do not overlap.
func (b *Booking) Overlaps(from, to time.Time) bool {
	return b.StartsAt.Before(to) && b.EndsAt.After(from)
}

// StaffBookingsFilter фильтр для получения бронирований мастера
type StaffBookingsFilter struct {
	StaffID         int64     // Обязательный параметр
	LocationID      *int64    // Фильтр по локации (опционально, nil - все локации)
	From            time.Time // Начало окна (включительно)
	To              time.Time // Конец окна (не включительно)
	IncludeInactive bool      // Включать ли отменённые и no-show
}

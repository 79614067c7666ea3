package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetStaffBookings получает бронирования мастера, пересекающиеся с окном [From, To).
// Бронирование, заканчивающееся ровно в From, не пересекается с окном.
// По умолчанию отменённые и no-show исключаются
func (r *Repository) GetStaffBookings(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	if !filter.From.Before(filter.To) {
		return nil, fmt.Errorf("%w: from=%s, to=%s", ErrInvalidWindow, filter.From, filter.To)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"staff_id",
		"location_id",
		"service_id",
		"starts_at",
		"ends_at",
		"status",
		"created_at",
		"updated_at",
	).
		From("staff_bookings").
		Where(squirrel.Eq{"staff_id": filter.StaffID}).
		Where(squirrel.Lt{"starts_at": filter.To.UTC()}).
		Where(squirrel.Gt{"ends_at": filter.From.UTC()})

	// Фильтрация по локации (если указана)
	if filter.LocationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_id": *filter.LocationID})
	}

	// Исключаем неактивные бронирования, если они не запрошены явно
	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.OrderBy("starts_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Helper methods

// scanBookings сканирует строки результата в список бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.StaffID,
			&booking.LocationID,
			&booking.ServiceID,
			&booking.StartsAt,
			&booking.EndsAt,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.StartsAt = booking.StartsAt.UTC()
		booking.EndsAt = booking.EndsAt.UTC()
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

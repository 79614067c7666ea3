package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг и назначений мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceInfo получает длительность активной услуги в локации
func (r *Repository) GetServiceInfo(ctx context.Context, serviceID, locationID int64) (*domain.ServiceInfo, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"duration_minutes",
	).
		From("services").
		Where(squirrel.Eq{
			"id":          serviceID,
			"location_id": locationID,
			"is_active":   true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceInfo - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.ServiceInfo
	var duration sql.NullInt64

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&info.ServiceID,
		&duration,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceInfo - scan service: %v", ErrScanRow, err)
	}

	if !duration.Valid || duration.Int64 <= 0 {
		return nil, fmt.Errorf("%w: service id=%d", ErrInvalidDuration, serviceID)
	}
	info.DurationMinutes = int(duration.Int64)

	return &info, nil
}

// GetEligibleStaff получает активных мастеров локации, допущенных к услуге.
// Порядок: приоритет назначения, затем ID мастера
func (r *Repository) GetEligibleStaff(ctx context.Context, serviceID, locationID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select("s.id").
		From("staff s").
		Join("staff_services ss ON ss.staff_id = s.id").
		Where(squirrel.Eq{
			"ss.service_id": serviceID,
			"s.location_id": locationID,
			"s.is_active":   true,
		}).
		OrderBy("ss.priority ASC", "s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEligibleStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEligibleStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffIDs := make([]int64, 0)
	for rows.Next() {
		var staffID int64
		if err := rows.Scan(&staffID); err != nil {
			return nil, fmt.Errorf("%w: GetEligibleStaff - scan row: %v", ErrScanRow, err)
		}
		staffIDs = append(staffIDs, staffID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetEligibleStaff - rows error: %v", ErrScanRow, err)
	}

	return staffIDs, nil
}

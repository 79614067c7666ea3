package get_chain_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	"github.com/m04kA/SMC-ChainBookingService/pkg/timegrid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Steps) == 0 {
		return fmt.Errorf("%w: chain must contain at least one step", ErrInvalidInput)
	}

	if len(req.Steps) > domain.MaxChainSteps {
		return fmt.Errorf("%w: chain must contain at most %d steps", ErrInvalidInput, domain.MaxChainSteps)
	}

	for i, step := range req.Steps {
		if step.ServiceID <= 0 {
			return fmt.Errorf("%w: step %d: serviceID must be positive", ErrInvalidInput, i)
		}
		if staffID, ok := step.Staff.StaffID(); ok && staffID <= 0 {
			return fmt.Errorf("%w: step %d: staffID must be positive", ErrInvalidInput, i)
		}
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования в зоне локации
func validateDate(requestDate, now time.Time, zone *time.Location, config *domain.LocationSlotsConfig) error {
	// Проверяем, что дата не в прошлом
	if timegrid.IsRequestedDateInPast(requestDate, now, zone) {
		return ErrInvalidDate
	}

	if !config.HasAdvanceBookingLimit() {
		return nil
	}

	if timegrid.DaysAhead(requestDate, now, zone) > config.AdvanceBookingDays {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, config.AdvanceBookingDays)
	}

	return nil
}

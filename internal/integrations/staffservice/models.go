package staffservice

import (
	"fmt"

	"github.com/m04kA/SMC-ChainBookingService/pkg/types"
)

// DaySchedule рабочий график мастера на один день в локальном времени локации
type DaySchedule struct {
	StaffID    int64            `json:"staff_id"`
	LocationID int64            `json:"location_id"`
	Date       string           `json:"date"` // YYYY-MM-DD
	IsWorking  bool             `json:"is_working"`
	StartTime  types.TimeString `json:"start_time,omitempty"`
	EndTime    types.TimeString `json:"end_time,omitempty"`
	Breaks     []Break          `json:"breaks,omitempty"`
}

// Break перерыв внутри рабочего дня
type Break struct {
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
}

// Validate проверяет согласованность графика рабочего дня
func (s *DaySchedule) Validate() error {
	if !s.IsWorking {
		return nil
	}

	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("start_time: %w", err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("end_time: %w", err)
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("start_time %s must be before end_time %s", s.StartTime, s.EndTime)
	}

	for i, b := range s.Breaks {
		if err := b.StartTime.Validate(); err != nil {
			return fmt.Errorf("breaks[%d].start_time: %w", i, err)
		}
		if err := b.EndTime.Validate(); err != nil {
			return fmt.Errorf("breaks[%d].end_time: %w", i, err)
		}
		if !b.StartTime.IsBefore(b.EndTime) {
			return fmt.Errorf("breaks[%d]: start_time %s must be before end_time %s", i, b.StartTime, b.EndTime)
		}
	}

	return nil
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

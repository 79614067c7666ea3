package get_chain_availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
	getChainAvailability "github.com/m04kA/SMC-ChainBookingService/internal/usecase/get_chain_availability"
)

var errEmptyDate = errors.New("date is required")

// ChainAvailabilityRequest HTTP request model
type ChainAvailabilityRequest struct {
	Date  string      `json:"date"` // "2026-10-16"
	Steps []ChainStep `json:"steps"`
}

// ChainStep шаг цепочки. Отсутствующий staffId означает любого подходящего мастера
type ChainStep struct {
	ServiceID int64  `json:"serviceId"`
	StaffID   *int64 `json:"staffId,omitempty"`
}

// ChainAvailabilityResponse HTTP response model
type ChainAvailabilityResponse struct {
	Date       string `json:"date"`
	LocationID int64  `json:"locationId"`
	TimeZone   string `json:"timeZone"`
	Plans      []Plan `json:"plans"`
}

// Plan одно допустимое время начала цепочки с назначенными мастерами
type Plan struct {
	StartUTC        time.Time    `json:"startUtc"`
	StartLocal      time.Time    `json:"startLocal"`
	StartLocalLabel string       `json:"startLocalLabel"`
	Assignments     []Assignment `json:"assignments"`
}

// Assignment назначение мастера на услугу
type Assignment struct {
	ServiceID       int64     `json:"serviceId"`
	StaffID         int64     `json:"staffId"`
	StartUTC        time.Time `json:"startUtc"`
	EndUTC          time.Time `json:"endUtc"`
	StartLocal      time.Time `json:"startLocal"`
	EndLocal        time.Time `json:"endLocal"`
	DurationMinutes int       `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChainAvailabilityRequest) ToUseCaseRequest(locationID int64) (*getChainAvailability.Request, error) {
	if r.Date == "" {
		return nil, errEmptyDate
	}

	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	steps := make([]domain.ChainStep, len(r.Steps))
	for i, step := range r.Steps {
		selector := domain.AnyStaff()
		if step.StaffID != nil {
			selector = domain.PinnedStaff(*step.StaffID)
		}
		steps[i] = domain.ChainStep{ServiceID: step.ServiceID, Staff: selector}
	}

	return &getChainAvailability.Request{
		LocationID: locationID,
		Date:       date,
		Steps:      steps,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getChainAvailability.Response) *ChainAvailabilityResponse {
	plans := make([]Plan, len(resp.Plans))
	for i, plan := range resp.Plans {
		assignments := make([]Assignment, len(plan.Assignments))
		for j, a := range plan.Assignments {
			assignments[j] = Assignment{
				ServiceID:       a.ServiceID,
				StaffID:         a.StaffID,
				StartUTC:        a.StartUTC,
				EndUTC:          a.EndUTC,
				StartLocal:      a.StartLocal,
				EndLocal:        a.EndLocal,
				DurationMinutes: a.DurationMinutes,
			}
		}

		plans[i] = Plan{
			StartUTC:        plan.StartUTC,
			StartLocal:      plan.StartLocal,
			StartLocalLabel: plan.StartLocalLabel,
			Assignments:     assignments,
		}
	}

	return &ChainAvailabilityResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		LocationID: resp.LocationID,
		TimeZone:   resp.TimeZone,
		Plans:      plans,
	}
}

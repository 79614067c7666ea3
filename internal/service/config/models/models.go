package models

import (
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
)

// Уровни иерархии, из которых взята конфигурация
const (
	SourceLocation = "location"
	SourceGlobal   = "global"
	SourceDefault  = "default"
)

// ConfigResponse действующая конфигурация расписания локации
type ConfigResponse struct {
	LocationID              int64      `json:"locationId"`
	StepMinutes             int        `json:"stepMinutes"`
	MinBookingNoticeMinutes int        `json:"minBookingNoticeMinutes"`
	AdvanceBookingDays      int        `json:"advanceBookingDays"` // 0 = без ограничений
	TimeZone                string     `json:"timeZone"`
	Source                  string     `json:"source"` // location, global, default
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(locationID int64, config *domain.LocationSlotsConfig, source string) *ConfigResponse {
	resp := &ConfigResponse{
		LocationID:              locationID,
		StepMinutes:             config.StepMinutes,
		MinBookingNoticeMinutes: config.MinBookingNoticeMinutes,
		AdvanceBookingDays:      config.AdvanceBookingDays,
		TimeZone:                config.TimeZone,
		Source:                  source,
	}
	if !config.UpdatedAt.IsZero() {
		updatedAt := config.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

package models

import "time"

// StaffAvailabilityResponse моменты, в которые мастер может начать работу
type StaffAvailabilityResponse struct {
	StaffID     int64  `json:"staffId"`
	LocationID  int64  `json:"locationId"`
	Date        string `json:"date"`
	TimeZone    string `json:"timeZone"`
	StepMinutes int    `json:"stepMinutes"`
	Slots       []Slot `json:"slots"`
}

// Slot один шаг сетки
type Slot struct {
	StartUTC   time.Time `json:"startUtc"`
	StartLocal time.Time `json:"startLocal"`
	Label      string    `json:"label"` // HH:MM в зоне локации
}

package domain

import (
	"fmt"
	"time"
)

// LocationSlotsConfig represents the scheduling configuration for a location.
// Supports hierarchical configuration:
// 1. Location-specific (location_id)
// 2. Global (NULL)
type LocationSlotsConfig struct {
	ID                      int64
	LocationID              *int64 // NULL = config for all locations
	StepMinutes             int
	MinBookingNoticeMinutes int
	AdvanceBookingDays      int    // 0 = unlimited
	TimeZone                string // IANA name, e.g. "Europe/Moscow"
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsGlobalConfig returns true if this configuration applies to all locations
func (c *LocationSlotsConfig) IsGlobalConfig() bool {
	return c.LocationID == nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *LocationSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// Step returns the grid step as a duration
func (c *LocationSlotsConfig) Step() time.Duration {
	return MinutesToDuration(c.StepMinutes)
}

// Notice returns the minimum booking notice as a duration
func (c *LocationSlotsConfig) Notice() time.Duration {
	return MinutesToDuration(c.MinBookingNoticeMinutes)
}

// Location loads the configured time zone
func (c *LocationSlotsConfig) Location() (*time.Location, error) {
	zone, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return zone, nil
}

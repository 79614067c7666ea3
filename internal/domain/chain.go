package domain

import "time"

// ChainStep is one service of the chain together with the staff selector
type ChainStep struct {
	ServiceID int64
	Staff     StaffSelector
}

// ServiceInfo is the minimal catalog data the resolver needs about a service
type ServiceInfo struct {
	ServiceID       int64
	DurationMinutes int
}

// Duration returns the service length
func (s ServiceInfo) Duration() time.Duration {
	return MinutesToDuration(s.DurationMinutes)
}

// StepCandidate is a chain step with its concrete staff candidates in trial order
type StepCandidate struct {
	ServiceID       int64
	DurationMinutes int
	StaffIDs        []int64
}

// Duration returns the service length
func (c StepCandidate) Duration() time.Duration {
	return MinutesToDuration(c.DurationMinutes)
}

// Assignment places one service of the chain on one staff member
type Assignment struct {
	ServiceID       int64
	StaffID         int64
	StartUTC        time.Time
	EndUTC          time.Time
	StartLocal      time.Time
	EndLocal        time.Time
	DurationMinutes int
}

// Plan is one complete proposal for the whole chain
type Plan struct {
	StartUTC        time.Time
	StartLocal      time.Time
	StartLocalLabel string // HH:MM in the location zone
	Assignments     []Assignment
}

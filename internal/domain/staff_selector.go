package domain

import "strconv"

// StaffSelector selects who performs a chain step: either one pinned staff member
// or any staff eligible for the service.
// The zero value is AnyStaff.
type StaffSelector struct {
	staffID int64
	pinned  bool
}

// PinnedStaff selects exactly the given staff member
func PinnedStaff(staffID int64) StaffSelector {
	return StaffSelector{staffID: staffID, pinned: true}
}

// AnyStaff selects any active staff member assigned to the service
func AnyStaff() StaffSelector {
	return StaffSelector{}
}

// IsAny returns true if the step is open to any eligible staff
func (s StaffSelector) IsAny() bool {
	return !s.pinned
}

// StaffID returns the pinned staff id; ok is false for AnyStaff
func (s StaffSelector) StaffID() (id int64, ok bool) {
	return s.staffID, s.pinned
}

func (s StaffSelector) String() string {
	if !s.pinned {
		return "any"
	}
	return strconv.FormatInt(s.staffID, 10)
}

package scheduling

import "salonbook/models"

// HasConflict reports whether the candidate's [start, start+duration)
// interval overlaps any existing appointment for the same employee on the
// same date. The candidate's own record (matched by id) is ignored so an
// update never conflicts with itself. Touching endpoints do not conflict:
// a booking starting exactly when another ends is allowed.
func HasConflict(candidate models.Appointment, existing []models.Appointment) bool {
	return FindConflict(candidate, existing) != nil
}

// FindConflict returns the first overlapping appointment, or nil when the
// candidate's slot is free. Blocking versus warning on a conflict is the
// caller's policy; this only detects.
func FindConflict(candidate models.Appointment, existing []models.Appointment) *models.Appointment {
	candStart, err := parseClock(candidate.Time)
	if err != nil {
		return nil
	}
	candEnd := candStart + candidate.Duration

	for i := range existing {
		other := &existing[i]
		if other.EmployeeID != candidate.EmployeeID || other.Date != candidate.Date {
			continue
		}
		if other.ID == candidate.ID {
			continue
		}
		otherStart, err := parseClock(other.Time)
		if err != nil {
			continue
		}
		otherEnd := otherStart + other.Duration
		if candStart < otherEnd && candEnd > otherStart {
			return other
		}
	}
	return nil
}

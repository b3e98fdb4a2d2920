package scheduling

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"salonbook/models"
)

// slotStep is the booking granularity in minutes.
const slotStep = 30

// parseClock converts an "HH:mm" string to minutes from midnight.
func parseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", clock)
	}
	return h*60 + m, nil
}

// formatClock converts minutes from midnight to an "HH:mm" string.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// OccupiedSlots derives the set of occupied 30-minute time stamps for one
// employee on one date. Every appointment matching employeeID and date marks
// each 30-minute boundary it reaches while offset < duration, so a 45-minute
// booking at 10:00 marks 10:00 and 10:30. Appointments with unparseable
// start times are skipped.
func OccupiedSlots(appointments []models.Appointment, employeeID int, date string) map[string]struct{} {
	occupied := make(map[string]struct{})
	for _, a := range appointments {
		if a.EmployeeID != employeeID || a.Date != date {
			continue
		}
		start, err := parseClock(a.Time)
		if err != nil {
			continue
		}
		for offset := 0; offset < a.Duration; offset += slotStep {
			occupied[formatClock(start+offset)] = struct{}{}
		}
	}
	return occupied
}

// OccupiedSlotList is OccupiedSlots flattened to a sorted slice for JSON
// responses.
func OccupiedSlotList(appointments []models.Appointment, employeeID int, date string) []string {
	set := OccupiedSlots(appointments, employeeID, date)
	slots := make([]string, 0, len(set))
	for s := range set {
		slots = append(slots, s)
	}
	sort.Strings(slots)
	return slots
}

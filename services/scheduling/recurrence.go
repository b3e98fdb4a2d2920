package scheduling

import (
	"time"

	"salonbook/models"
)

const (
	// defaultPreferredTime is used when a treatment has no preferred time.
	defaultPreferredTime = "09:00"
	// defaultTreatmentColor tags appointments generated from recurring
	// treatments. Opaque to the core.
	defaultTreatmentColor = "#8b5cf6"

	dateLayout = "2006-01-02"
)

// NewIDFunc supplies fresh appointment ids to the expander.
type NewIDFunc func() string

// ExpandTreatment materializes the appointments a recurring treatment calls
// for inside [windowStart, windowEnd). Inactive treatments yield nothing.
//
// The cursor starts at max(treatment start, windowStart) and advances by the
// treatment's frequency stride on every pass, whether or not that pass
// emitted anything; only the decision to emit is conditional. A cursor date
// is materialized when the cadence predicate holds (weekly: day of week,
// monthly: day of month) and no existing appointment already matches the
// same client, employee and date - the idempotence guard that makes repeated
// expansion over the same window safe.
//
// Nothing is persisted here; the caller owns side effects.
func ExpandTreatment(t models.RecurringTreatment, windowStart, windowEnd time.Time, existing []models.Appointment, client models.ClientInfo, newID NewIDFunc) []models.Appointment {
	if !t.IsActive {
		return nil
	}

	start, err := time.Parse(dateLayout, t.StartDate)
	if err != nil {
		return nil
	}

	cursor := start
	if windowStart.After(cursor) {
		cursor = windowStart
	}

	limit := windowEnd
	if t.EndDate != "" {
		if end, err := time.Parse(dateLayout, t.EndDate); err == nil && end.Before(limit) {
			limit = end
		}
	}

	stride := t.FrequencyValue
	if stride < 1 {
		stride = 1
	}

	preferredTime := t.PreferredTime
	if preferredTime == "" {
		preferredTime = defaultPreferredTime
	}

	var generated []models.Appointment
	for cursor.Before(limit) {
		if matchesCadence(t, cursor) {
			date := cursor.Format(dateLayout)
			if !appointmentExists(existing, t.ClientID, t.EmployeeID, date) {
				generated = append(generated, models.Appointment{
					ID:          newID(),
					EmployeeID:  t.EmployeeID,
					Date:        date,
					Time:        preferredTime,
					Title:       t.ServiceType,
					Client:      client.Name,
					ClientID:    t.ClientID,
					ServiceType: t.ServiceType,
					Duration:    t.Duration,
					Notes:       t.Notes,
					Email:       client.Email,
					Phone:       client.Phone,
					Color:       defaultTreatmentColor,
				})
			}
		}

		switch t.FrequencyType {
		case models.FrequencyMonthly:
			cursor = cursor.AddDate(0, stride, 0)
		default:
			cursor = cursor.AddDate(0, 0, 7*stride)
		}
	}
	return generated
}

func matchesCadence(t models.RecurringTreatment, day time.Time) bool {
	switch t.FrequencyType {
	case models.FrequencyWeekly:
		return int(day.Weekday()) == t.PreferredDayOfWeek
	case models.FrequencyMonthly:
		return day.Day() == t.PreferredDayOfMonth
	}
	return false
}

func appointmentExists(existing []models.Appointment, clientID string, employeeID int, date string) bool {
	for _, a := range existing {
		if a.ClientID == clientID && a.EmployeeID == employeeID && a.Date == date {
			return true
		}
	}
	return false
}

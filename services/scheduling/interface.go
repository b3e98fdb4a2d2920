package scheduling

import (
	"context"
	"time"

	"salonbook/models"
)

// BookingRequest carries an approved form draft and everything needed to
// expand it into one or more appointment records.
type BookingRequest struct {
	Draft            models.AppointmentDraft  `json:"draft"`
	ClientID         string                   `json:"clientId,omitempty"`
	ExistingID       string                   `json:"existingId,omitempty"` // set when editing
	AdditionalEvents []models.AdditionalEvent `json:"additionalEvents,omitempty"`
	SelectedDates    []string                 `json:"selectedDates,omitempty"` // recurring copies; the draft's own date is excluded
	AllowConflict    bool                     `json:"allowConflict,omitempty"` // blocking policy belongs to the caller
}

// BookingResult reports what a booking produced.
type BookingResult struct {
	Appointments []models.Appointment `json:"appointments"`
	Batch        BatchResult          `json:"batch"`
	Summary      string               `json:"summary"`
}

// RecurringRunResult reports a batch expansion of recurring treatments.
type RecurringRunResult struct {
	Generated int         `json:"generated"`
	Batch     BatchResult `json:"batch"`
	Summary   string      `json:"summary"`
}

// ConflictCheck is the outcome of an availability probe.
type ConflictCheck struct {
	Conflict bool                `json:"conflict"`
	With     *models.Appointment `json:"with,omitempty"`
}

// SchedulingService is the appointment scheduling engine surface.
type SchedulingService interface {
	ListAppointments(ctx context.Context, forceRefresh bool) ReadResult
	CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error)
	ReplaceAppointment(ctx context.Context, a models.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
	GetOccupiedSlots(ctx context.Context, employeeID int, date string) ([]string, error)
	CheckConflict(ctx context.Context, candidate models.Appointment) (ConflictCheck, error)
	RunRecurring(ctx context.Context, windowStart, windowEnd time.Time) (*RecurringRunResult, error)
}

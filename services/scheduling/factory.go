package scheduling

import (
	"context"

	"salonbook/models"
)

// Factory builds concrete appointment records from form drafts.
type Factory struct {
	Minter *IDMinter
}

// BuildAppointment produces one appointment from the draft for the given
// date. When editing, existingID is reused; otherwise a fresh unique id is
// minted.
func (f *Factory) BuildAppointment(ctx context.Context, draft models.AppointmentDraft, clientID, date, existingID string) models.Appointment {
	id := existingID
	if id == "" {
		id = f.Minter.Mint(ctx)
	}
	return models.Appointment{
		ID:          id,
		EmployeeID:  draft.EmployeeID,
		Date:        date,
		Time:        draft.Time,
		Title:       draft.Title,
		Client:      draft.Client,
		ClientID:    clientID,
		ServiceType: draft.ServiceType,
		Duration:    draft.Duration,
		Notes:       draft.Notes,
		Email:       draft.Email,
		Phone:       draft.Phone,
		Color:       draft.Color,
	}
}

// BuildAdditionalAppointments maps each additional event into a full
// appointment by overlaying its own slot fields onto the draft's shared
// client fields. Every record gets a fresh id; siblings never share one.
func (f *Factory) BuildAdditionalAppointments(ctx context.Context, draft models.AppointmentDraft, clientID, date string, events []models.AdditionalEvent) []models.Appointment {
	appointments := make([]models.Appointment, 0, len(events))
	for _, ev := range events {
		appointments = append(appointments, models.Appointment{
			ID:          f.Minter.Mint(ctx),
			EmployeeID:  ev.EmployeeID,
			Date:        date,
			Time:        ev.Time,
			Title:       ev.Title,
			Client:      draft.Client,
			ClientID:    clientID,
			ServiceType: ev.ServiceType,
			Duration:    ev.Duration,
			Notes:       ev.Notes,
			Email:       draft.Email,
			Phone:       draft.Phone,
			Color:       draft.Color,
		})
	}
	return appointments
}

// BuildRecurringAppointments emits the records for every selected date
// except mainDate, whose appointment is created through the primary path.
// For each eligible date it emits the main-draft appointment followed by
// one appointment per additional event, preserving input order on both
// loops; that order governs save order and any numbering shown to the
// user. Total emitted = eligible dates x (1 + len(events)).
func (f *Factory) BuildRecurringAppointments(ctx context.Context, draft models.AppointmentDraft, clientID string, selectedDates []string, events []models.AdditionalEvent, mainDate string) []models.Appointment {
	var appointments []models.Appointment
	for _, date := range selectedDates {
		if date == mainDate {
			continue
		}
		appointments = append(appointments, f.BuildAppointment(ctx, draft, clientID, date, ""))
		appointments = append(appointments, f.BuildAdditionalAppointments(ctx, draft, clientID, date, events)...)
	}
	return appointments
}

package scheduling

import (
	"strings"
	"testing"

	"salonbook/models"
)

func validDraft() models.AppointmentDraft {
	return models.AppointmentDraft{
		EmployeeID:  1,
		Date:        "2025-06-10",
		Time:        "10:00",
		Client:      "Dana Levi",
		ServiceType: "haircut",
		Duration:    60,
	}
}

func TestValidateDraftAcceptsCompleteDraft(t *testing.T) {
	if v := ValidateDraft(validDraft(), nil); !v.OK {
		t.Errorf("valid draft rejected: %s", v.Reason)
	}
}

func TestValidateDraftRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AppointmentDraft)
	}{
		{"empty client", func(d *models.AppointmentDraft) { d.Client = "   " }},
		{"empty service type", func(d *models.AppointmentDraft) { d.ServiceType = "" }},
		{"missing employee", func(d *models.AppointmentDraft) { d.EmployeeID = 0 }},
		{"missing time", func(d *models.AppointmentDraft) { d.Time = "" }},
		{"zero duration", func(d *models.AppointmentDraft) { d.Duration = 0 }},
		{"negative duration", func(d *models.AppointmentDraft) { d.Duration = -30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			v := ValidateDraft(draft, nil)
			if v.OK {
				t.Fatal("invalid draft accepted")
			}
			if v.Reason == "" {
				t.Error("failure has no reason")
			}
		})
	}
}

func TestValidateDraftAdditionalEventIdentified(t *testing.T) {
	events := []models.AdditionalEvent{
		{EmployeeID: 2, Time: "12:00", Duration: 30, ServiceType: "manicure"},
		{EmployeeID: 3, Time: "13:00", Duration: 0, ServiceType: "pedicure"}, // bad duration
	}

	v := ValidateDraft(validDraft(), events)
	if v.OK {
		t.Fatal("batch with invalid event accepted")
	}
	if !strings.Contains(v.Reason, "2") {
		t.Errorf("reason %q does not identify event 2", v.Reason)
	}
}

func TestValidateDraftFailFast(t *testing.T) {
	draft := validDraft()
	draft.Client = ""
	draft.Duration = 0

	v := ValidateDraft(draft, nil)
	if v.OK {
		t.Fatal("invalid draft accepted")
	}
	// First failing field wins; exactly one reason is reported.
	if !strings.Contains(v.Reason, "client") {
		t.Errorf("reason %q, want the client failure first", v.Reason)
	}
}

func TestValidateRecord(t *testing.T) {
	good := appt("id-1", 1, "2025-06-10", "10:00", 60)
	if err := ValidateRecord(good); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.Appointment)
	}{
		{"missing id", func(a *models.Appointment) { a.ID = "" }},
		{"missing employee", func(a *models.Appointment) { a.EmployeeID = 0 }},
		{"missing date", func(a *models.Appointment) { a.Date = "" }},
		{"missing time", func(a *models.Appointment) { a.Time = "" }},
		{"missing client", func(a *models.Appointment) { a.Client = "" }},
		{"missing service type", func(a *models.Appointment) { a.ServiceType = "" }},
		{"zero duration", func(a *models.Appointment) { a.Duration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := good
			tt.mutate(&a)
			if err := ValidateRecord(a); err == nil {
				t.Error("invalid record accepted")
			}
		})
	}
}

package scheduling

import (
	"context"
	"testing"

	"salonbook/models"
)

func newTestFactory() *Factory {
	return &Factory{Minter: NewIDMinter(nil)}
}

func TestBuildAppointmentMintsFreshID(t *testing.T) {
	f := newTestFactory()
	draft := validDraft()

	a := f.BuildAppointment(context.Background(), draft, "client-7", "2025-06-10", "")
	if a.ID == "" {
		t.Fatal("no id minted")
	}
	if a.EmployeeID != draft.EmployeeID || a.Date != "2025-06-10" || a.Time != draft.Time {
		t.Errorf("draft fields not carried over: %+v", a)
	}
	if a.ClientID != "client-7" {
		t.Errorf("ClientID = %q, want client-7", a.ClientID)
	}
}

func TestBuildAppointmentReusesExistingID(t *testing.T) {
	f := newTestFactory()

	a := f.BuildAppointment(context.Background(), validDraft(), "", "2025-06-10", "keep-me")
	if a.ID != "keep-me" {
		t.Errorf("ID = %q, want keep-me", a.ID)
	}
}

func TestBuildAdditionalAppointmentsOverlay(t *testing.T) {
	f := newTestFactory()
	draft := validDraft()
	draft.Email = "dana@example.com"
	draft.Phone = "050-1234567"
	events := []models.AdditionalEvent{
		{EmployeeID: 2, Time: "12:00", Duration: 30, ServiceType: "manicure", Title: "nails"},
		{EmployeeID: 3, Time: "13:00", Duration: 45, ServiceType: "pedicure"},
	}

	got := f.BuildAdditionalAppointments(context.Background(), draft, "client-7", "2025-06-10", events)
	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}

	for i, a := range got {
		if a.EmployeeID != events[i].EmployeeID || a.Time != events[i].Time || a.Duration != events[i].Duration {
			t.Errorf("event %d slot fields not overlaid: %+v", i+1, a)
		}
		if a.Client != draft.Client || a.Email != draft.Email || a.Phone != draft.Phone || a.ClientID != "client-7" {
			t.Errorf("event %d shared draft fields missing: %+v", i+1, a)
		}
		if a.Date != "2025-06-10" {
			t.Errorf("event %d date = %q", i+1, a.Date)
		}
	}
	if got[0].ID == got[1].ID {
		t.Error("sibling events share an id")
	}
}

func TestBuildRecurringAppointmentsExcludesMainDate(t *testing.T) {
	f := newTestFactory()
	dates := []string{"2025-06-10", "2025-06-17", "2025-06-24"}

	got := f.BuildRecurringAppointments(context.Background(), validDraft(), "", dates, nil, "2025-06-10")

	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}
	if got[0].Date != "2025-06-17" || got[1].Date != "2025-06-24" {
		t.Errorf("dates = %s, %s; want 2025-06-17, 2025-06-24", got[0].Date, got[1].Date)
	}
}

func TestBuildRecurringAppointmentsEmissionOrder(t *testing.T) {
	f := newTestFactory()
	events := []models.AdditionalEvent{
		{EmployeeID: 2, Time: "12:00", Duration: 30, ServiceType: "manicure"},
		{EmployeeID: 3, Time: "13:00", Duration: 30, ServiceType: "pedicure"},
	}
	dates := []string{"2025-06-10", "2025-06-17", "2025-06-24"}

	got := f.BuildRecurringAppointments(context.Background(), validDraft(), "", dates, events, "2025-06-10")

	// 2 eligible dates x (1 main + 2 events)
	if len(got) != 6 {
		t.Fatalf("got %d appointments, want 6", len(got))
	}

	wantOrder := []struct {
		date    string
		service string
	}{
		{"2025-06-17", "haircut"},
		{"2025-06-17", "manicure"},
		{"2025-06-17", "pedicure"},
		{"2025-06-24", "haircut"},
		{"2025-06-24", "manicure"},
		{"2025-06-24", "pedicure"},
	}
	for i, w := range wantOrder {
		if got[i].Date != w.date || got[i].ServiceType != w.service {
			t.Errorf("position %d: got %s/%s, want %s/%s",
				i, got[i].Date, got[i].ServiceType, w.date, w.service)
		}
	}

	seen := make(map[string]struct{})
	for _, a := range got {
		if _, dup := seen[a.ID]; dup {
			t.Errorf("duplicate id %s in recurring batch", a.ID)
		}
		seen[a.ID] = struct{}{}
	}
}

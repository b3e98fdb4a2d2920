package scheduling

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"salonbook/models"
)

// In-memory repositories for engine tests.

type memAppointmentRepo struct {
	items map[string]models.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{items: make(map[string]models.Appointment)}
}

func (r *memAppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.items {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByEmployeeDate(ctx context.Context, employeeID int, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.items {
		if a.EmployeeID == employeeID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) Insert(ctx context.Context, a models.Appointment) error {
	if _, exists := r.items[a.ID]; exists {
		return fmt.Errorf("duplicate id %s", a.ID)
	}
	r.items[a.ID] = a
	return nil
}

func (r *memAppointmentRepo) Replace(ctx context.Context, a models.Appointment) error {
	if _, exists := r.items[a.ID]; !exists {
		return fmt.Errorf("appointment %s not found", a.ID)
	}
	r.items[a.ID] = a
	return nil
}

func (r *memAppointmentRepo) Delete(ctx context.Context, id string) error {
	if _, exists := r.items[id]; !exists {
		return fmt.Errorf("appointment %s not found", id)
	}
	delete(r.items, id)
	return nil
}

func (r *memAppointmentRepo) ExistsID(ctx context.Context, id string) (bool, error) {
	_, exists := r.items[id]
	return exists, nil
}

type memClientRepo struct {
	clients map[string]models.Client
}

func (r *memClientRepo) List(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %s not found", id)
	}
	return &c, nil
}

func (r *memClientRepo) GetInfo(ctx context.Context, id string) (*models.ClientInfo, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return &models.ClientInfo{Name: c.Name, Email: c.Email, Phone: c.Phone}, nil
}

type memTreatmentRepo struct {
	treatments []models.RecurringTreatment
}

func (r *memTreatmentRepo) List(ctx context.Context, clientID string) ([]models.RecurringTreatment, error) {
	if clientID == "" {
		return r.treatments, nil
	}
	var out []models.RecurringTreatment
	for _, t := range r.treatments {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTreatmentRepo) ListActive(ctx context.Context) ([]models.RecurringTreatment, error) {
	var out []models.RecurringTreatment
	for _, t := range r.treatments {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func newTestEngine(appts *memAppointmentRepo, treatments []models.RecurringTreatment) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Appointments: appts,
		Clients: &memClientRepo{clients: map[string]models.Client{
			"client-7": {ID: "client-7", Name: "Dana Levi", Email: "dana@example.com", Phone: "050-1234567"},
		}},
		Treatments: &memTreatmentRepo{treatments: treatments},
		Cache:      NewSyncCache(appts.List, time.Second),
		Saver:      &BatchSaver{Pause: -1},
		Logger:     zap.NewNop(),
	}
}

func TestCreateBookingExpandsFullBatch(t *testing.T) {
	repo := newMemAppointmentRepo()
	engine := newTestEngine(repo, nil)

	req := BookingRequest{
		Draft:    validDraft(),
		ClientID: "client-7",
		AdditionalEvents: []models.AdditionalEvent{
			{EmployeeID: 2, Time: "12:00", Duration: 30, ServiceType: "manicure"},
		},
		SelectedDates: []string{"2025-06-10", "2025-06-17"},
	}

	result, err := engine.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	// main + 1 additional + 1 recurring date x (1 + 1 event)
	if len(result.Appointments) != 4 {
		t.Fatalf("built %d appointments, want 4", len(result.Appointments))
	}
	if result.Batch.SavedCount != 4 {
		t.Errorf("SavedCount = %d, want 4", result.Batch.SavedCount)
	}
	if len(repo.items) != 4 {
		t.Errorf("store holds %d records, want 4", len(repo.items))
	}

	// The optimistic cache reflects the writes without a refresh.
	read := engine.ListAppointments(context.Background(), false)
	if len(read.Data) != 4 {
		t.Errorf("cache holds %d records, want 4", len(read.Data))
	}
}

func TestCreateBookingRejectsInvalidDraft(t *testing.T) {
	engine := newTestEngine(newMemAppointmentRepo(), nil)

	draft := validDraft()
	draft.Client = ""
	_, err := engine.CreateBooking(context.Background(), BookingRequest{Draft: draft})
	if err == nil {
		t.Fatal("invalid draft accepted")
	}
	if !IsValidationError(err) {
		t.Errorf("error %v is not a validation error", err)
	}
}

func TestCreateBookingConflictPolicy(t *testing.T) {
	repo := newMemAppointmentRepo()
	blocker := appt("busy", 1, "2025-06-10", "10:00", 60)
	if err := repo.Insert(context.Background(), blocker); err != nil {
		t.Fatal(err)
	}
	engine := newTestEngine(repo, nil)

	req := BookingRequest{Draft: validDraft()}
	_, err := engine.CreateBooking(context.Background(), req)
	if !IsConflictError(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// The caller may choose to book anyway.
	req.AllowConflict = true
	result, err := engine.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("AllowConflict booking failed: %v", err)
	}
	if result.Batch.SavedCount != 1 {
		t.Errorf("SavedCount = %d, want 1", result.Batch.SavedCount)
	}
}

func TestRunRecurringIsIdempotent(t *testing.T) {
	repo := newMemAppointmentRepo()
	engine := newTestEngine(repo, []models.RecurringTreatment{weeklyTreatment()})

	start, end := day("2025-06-01"), day("2025-06-29")

	first, err := engine.RunRecurring(context.Background(), start, end)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.Generated != 4 || first.Batch.SavedCount != 4 {
		t.Fatalf("first run generated %d saved %d, want 4/4", first.Generated, first.Batch.SavedCount)
	}

	second, err := engine.RunRecurring(context.Background(), start, end)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.Generated != 0 {
		t.Errorf("second run generated %d, want 0", second.Generated)
	}
	if len(repo.items) != 4 {
		t.Errorf("store holds %d records after rerun, want 4", len(repo.items))
	}
}

func TestRunRecurringResolvesClientInfo(t *testing.T) {
	repo := newMemAppointmentRepo()
	engine := newTestEngine(repo, []models.RecurringTreatment{weeklyTreatment()})

	if _, err := engine.RunRecurring(context.Background(), day("2025-06-01"), day("2025-06-08")); err != nil {
		t.Fatal(err)
	}
	for _, a := range repo.items {
		if a.Client != "Dana Levi" || a.Email != "dana@example.com" {
			t.Errorf("client info not resolved: %+v", a)
		}
	}
}

func TestDeleteAppointmentUpdatesCache(t *testing.T) {
	repo := newMemAppointmentRepo()
	target := appt("gone", 1, "2025-06-10", "10:00", 30)
	if err := repo.Insert(context.Background(), target); err != nil {
		t.Fatal(err)
	}
	engine := newTestEngine(repo, nil)

	engine.ListAppointments(context.Background(), true) // warm the cache
	if err := engine.DeleteAppointment(context.Background(), "gone"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	read := engine.ListAppointments(context.Background(), false)
	for _, a := range read.Data {
		if a.ID == "gone" {
			t.Error("deleted appointment still in cache")
		}
	}
}

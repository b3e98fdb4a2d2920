package scheduling

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	clientRepo "salonbook/database/repository/client"
	treatmentRepo "salonbook/database/repository/treatment"
	"salonbook/models"
	"salonbook/services/notification"
)

// DefaultSchedulingEngine is the production scheduling engine. It owns the
// booking pipeline: validate -> conflict policy -> build -> batch save,
// plus recurring expansion and cache-mediated reads.
type DefaultSchedulingEngine struct {
	Appointments appointmentRepo.AppointmentRepository
	Clients      clientRepo.ClientRepository
	Treatments   treatmentRepo.TreatmentRepository
	Cache        *SyncCache
	Saver        *BatchSaver
	Notification notification.NotificationService
	Logger       *zap.Logger
}

// ListAppointments reads through the sync cache.
func (se *DefaultSchedulingEngine) ListAppointments(ctx context.Context, forceRefresh bool) ReadResult {
	return se.Cache.Read(ctx, forceRefresh)
}

// CreateBooking validates the draft, expands it into the full record batch
// (main + additional events + recurring copies), applies the caller's
// conflict policy, and persists everything with partial-failure tolerance.
func (se *DefaultSchedulingEngine) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	if v := ValidateDraft(req.Draft, req.AdditionalEvents); !v.OK {
		return nil, NewValidationError(v.Reason)
	}

	// The id memo lives and dies with this one booking.
	minter := NewIDMinter(se.Appointments.ExistsID)
	factory := &Factory{Minter: minter}

	batch := []models.Appointment{
		factory.BuildAppointment(ctx, req.Draft, req.ClientID, req.Draft.Date, req.ExistingID),
	}
	batch = append(batch, factory.BuildAdditionalAppointments(ctx, req.Draft, req.ClientID, req.Draft.Date, req.AdditionalEvents)...)
	batch = append(batch, factory.BuildRecurringAppointments(ctx, req.Draft, req.ClientID, req.SelectedDates, req.AdditionalEvents, req.Draft.Date)...)

	if !req.AllowConflict {
		for _, a := range batch {
			check, err := se.CheckConflict(ctx, a)
			if err != nil {
				return nil, err
			}
			if check.Conflict {
				return nil, NewConflictError(fmt.Sprintf(
					"%s %s overlaps an existing appointment for employee %d",
					a.Date, a.Time, a.EmployeeID))
			}
		}
	}

	isEdit := req.ExistingID != ""
	result := se.Saver.SaveAll(ctx, batch, func(ctx context.Context, a models.Appointment) error {
		if err := ValidateRecord(a); err != nil {
			return err
		}
		if isEdit && a.ID == req.ExistingID {
			if err := se.Appointments.Replace(ctx, a); err != nil {
				return err
			}
			se.Cache.ApplyLocalMutation(MutationUpdate, a)
			return nil
		}
		if err := se.Appointments.Insert(ctx, a); err != nil {
			return err
		}
		se.Cache.ApplyLocalMutation(MutationAdd, a)
		return nil
	})

	se.notify(ctx, "Booking", result.Summary())
	return &BookingResult{
		Appointments: batch,
		Batch:        result,
		Summary:      result.Summary(),
	}, nil
}

// ReplaceAppointment overwrites one appointment wholesale after the
// structural guard and a conflict check that ignores the record itself.
func (se *DefaultSchedulingEngine) ReplaceAppointment(ctx context.Context, a models.Appointment) error {
	if err := ValidateRecord(a); err != nil {
		return NewValidationError(err.Error())
	}
	check, err := se.CheckConflict(ctx, a)
	if err != nil {
		return err
	}
	if check.Conflict {
		return NewConflictError(fmt.Sprintf(
			"%s %s overlaps an existing appointment for employee %d",
			a.Date, a.Time, a.EmployeeID))
	}
	if err := se.Appointments.Replace(ctx, a); err != nil {
		return err
	}
	se.Cache.ApplyLocalMutation(MutationUpdate, a)
	return nil
}

// DeleteAppointment removes one appointment by id.
func (se *DefaultSchedulingEngine) DeleteAppointment(ctx context.Context, id string) error {
	if err := se.Appointments.Delete(ctx, id); err != nil {
		return err
	}
	se.Cache.ApplyLocalMutation(MutationDelete, models.Appointment{ID: id})
	return nil
}

// GetOccupiedSlots returns the occupied 30-minute stamps for an employee on
// a date.
func (se *DefaultSchedulingEngine) GetOccupiedSlots(ctx context.Context, employeeID int, date string) ([]string, error) {
	appointments, err := se.Appointments.ListByEmployeeDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for employee %d on %s: %w", employeeID, date, err)
	}
	return OccupiedSlotList(appointments, employeeID, date), nil
}

// CheckConflict probes the candidate against the stored appointments for
// its employee and date. Detection only; blocking is the caller's call.
func (se *DefaultSchedulingEngine) CheckConflict(ctx context.Context, candidate models.Appointment) (ConflictCheck, error) {
	existing, err := se.Appointments.ListByEmployeeDate(ctx, candidate.EmployeeID, candidate.Date)
	if err != nil {
		return ConflictCheck{}, fmt.Errorf("failed to load appointments for conflict check: %w", err)
	}
	with := FindConflict(candidate, existing)
	return ConflictCheck{Conflict: with != nil, With: with}, nil
}

// RunRecurring expands every active treatment across the window and
// persists the generated appointments. Already-materialized dates are
// skipped by the expander's idempotence guard, so reruns over the same
// window are safe.
func (se *DefaultSchedulingEngine) RunRecurring(ctx context.Context, windowStart, windowEnd time.Time) (*RecurringRunResult, error) {
	treatments, err := se.Treatments.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active treatments: %w", err)
	}

	existing, err := se.Appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	minter := NewIDMinter(se.Appointments.ExistsID)
	var generated []models.Appointment
	for _, t := range treatments {
		info := se.lookupClientInfo(ctx, t.ClientID)
		batch := ExpandTreatment(t, windowStart, windowEnd, existing, info, func() string {
			return minter.Mint(ctx)
		})
		generated = append(generated, batch...)
		// Keep the guard accurate for later treatments in this run.
		existing = append(existing, batch...)
	}

	result := se.Saver.SaveAll(ctx, generated, func(ctx context.Context, a models.Appointment) error {
		if err := ValidateRecord(a); err != nil {
			return err
		}
		if err := se.Appointments.Insert(ctx, a); err != nil {
			return err
		}
		se.Cache.ApplyLocalMutation(MutationAdd, a)
		return nil
	})

	summary := fmt.Sprintf("recurring run: %s", result.Summary())
	se.notify(ctx, "Recurring treatments", summary)
	se.Logger.Info("recurring run finished",
		zap.Int("treatments", len(treatments)),
		zap.Int("generated", len(generated)),
		zap.Int("saved", result.SavedCount),
		zap.Int("failed", len(result.FailedSaves)))

	return &RecurringRunResult{
		Generated: len(generated),
		Batch:     result,
		Summary:   summary,
	}, nil
}

// lookupClientInfo resolves client contact fields, falling back to blanks
// when the client is missing or the lookup fails.
func (se *DefaultSchedulingEngine) lookupClientInfo(ctx context.Context, clientID string) models.ClientInfo {
	if clientID == "" {
		return models.ClientInfo{}
	}
	info, err := se.Clients.GetInfo(ctx, clientID)
	if err != nil {
		se.Logger.Warn("client lookup failed", zap.String("clientID", clientID), zap.Error(err))
		return models.ClientInfo{}
	}
	if info == nil {
		return models.ClientInfo{}
	}
	return *info
}

func (se *DefaultSchedulingEngine) notify(ctx context.Context, title, body string) {
	if se.Notification == nil {
		return
	}
	if err := se.Notification.Notify(ctx, title, body); err != nil {
		se.Logger.Warn("notification failed", zap.Error(err))
	}
}

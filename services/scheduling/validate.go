package scheduling

import (
	"fmt"
	"strings"

	"salonbook/models"
)

// ValidationResult reports the outcome of draft validation. Validation is
// fail-fast: the first failing field or event produces exactly one reason
// and further checks are skipped, mirroring single-message user reporting.
type ValidationResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func failed(reason string) ValidationResult {
	return ValidationResult{OK: false, Reason: reason}
}

// ValidateDraft applies required-field checks to an appointment draft and
// each of its additional events. A failure in any event fails the whole
// batch, identifying the event by its 1-based position.
func ValidateDraft(draft models.AppointmentDraft, events []models.AdditionalEvent) ValidationResult {
	if strings.TrimSpace(draft.Client) == "" {
		return failed("client name is required")
	}
	if strings.TrimSpace(draft.ServiceType) == "" {
		return failed("service type is required")
	}
	if draft.EmployeeID == 0 {
		return failed("employee is required")
	}
	if draft.Time == "" {
		return failed("time is required")
	}
	if draft.Duration <= 0 {
		return failed("duration must be positive")
	}

	for i, ev := range events {
		if strings.TrimSpace(ev.ServiceType) == "" {
			return failed(fmt.Sprintf("additional event %d: service type is required", i+1))
		}
		if ev.Time == "" {
			return failed(fmt.Sprintf("additional event %d: time is required", i+1))
		}
		if ev.EmployeeID == 0 {
			return failed(fmt.Sprintf("additional event %d: employee is required", i+1))
		}
		if ev.Duration <= 0 {
			return failed(fmt.Sprintf("additional event %d: duration must be positive", i+1))
		}
	}

	return ValidationResult{OK: true}
}

// ValidateRecord checks a fully-built appointment for structural
// completeness, independent of form semantics. Used as a final guard
// before persistence.
func ValidateRecord(a models.Appointment) error {
	switch {
	case a.ID == "":
		return fmt.Errorf("appointment record missing id")
	case a.EmployeeID == 0:
		return fmt.Errorf("appointment %s missing employee", a.ID)
	case a.Date == "":
		return fmt.Errorf("appointment %s missing date", a.ID)
	case a.Time == "":
		return fmt.Errorf("appointment %s missing time", a.ID)
	case a.Client == "":
		return fmt.Errorf("appointment %s missing client", a.ID)
	case a.ServiceType == "":
		return fmt.Errorf("appointment %s missing service type", a.ID)
	case a.Duration <= 0:
		return fmt.Errorf("appointment %s has non-positive duration", a.ID)
	}
	return nil
}

package scheduling

import (
	"testing"

	"salonbook/models"
)

func TestHasConflict(t *testing.T) {
	existing := []models.Appointment{
		appt("busy", 1, "2025-06-10", "10:00", 60), // occupies [10:00, 11:00)
	}

	tests := []struct {
		name      string
		candidate models.Appointment
		want      bool
	}{
		{"full overlap", appt("c", 1, "2025-06-10", "10:00", 60), true},
		{"partial overlap from before", appt("c", 1, "2025-06-10", "09:30", 60), true},
		{"partial overlap from inside", appt("c", 1, "2025-06-10", "10:30", 60), true},
		{"contained", appt("c", 1, "2025-06-10", "10:15", 15), true},
		{"touching end does not conflict", appt("c", 1, "2025-06-10", "11:00", 30), false},
		{"touching start does not conflict", appt("c", 1, "2025-06-10", "09:00", 60), false},
		{"other employee", appt("c", 2, "2025-06-10", "10:00", 60), false},
		{"other date", appt("c", 1, "2025-06-11", "10:00", 60), false},
		{"same id is ignored on update", appt("busy", 1, "2025-06-10", "10:30", 60), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.candidate, existing); got != tt.want {
				t.Errorf("HasConflict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindConflictReturnsOverlapping(t *testing.T) {
	existing := []models.Appointment{
		appt("a1", 1, "2025-06-10", "09:00", 30),
		appt("a2", 1, "2025-06-10", "10:00", 60),
	}

	with := FindConflict(appt("c", 1, "2025-06-10", "10:30", 30), existing)
	if with == nil {
		t.Fatal("expected a conflict")
	}
	if with.ID != "a2" {
		t.Errorf("conflicts with %s, want a2", with.ID)
	}

	if with := FindConflict(appt("c", 1, "2025-06-10", "09:30", 30), existing); with != nil {
		t.Errorf("unexpected conflict with %s", with.ID)
	}
}

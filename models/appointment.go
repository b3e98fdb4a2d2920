package models

// Appointment represents a confirmed salon booking for one employee on one date.
type Appointment struct {
	ID          string `bson:"id" json:"id"`                               // Unique appointment identifier (UUID)
	EmployeeID  int    `bson:"employee_id" json:"employeeId"`              // Employee who performs the service
	Date        string `bson:"date" json:"date"`                          // Appointment date in "YYYY-MM-DD" format
	Time        string `bson:"time" json:"time"`                          // Start time in "HH:mm", 30-minute granularity
	Title       string `bson:"title" json:"title"`                        // Display title
	Client      string `bson:"client" json:"client"`                      // Client display name
	ClientID    string `bson:"client_id,omitempty" json:"clientId,omitempty"` // Weak reference to a Client record
	ServiceType string `bson:"service_type" json:"serviceType"`           // e.g., "haircut", "coloring"
	Duration    int    `bson:"duration" json:"duration"`                  // Duration in minutes, positive
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Color       string `bson:"color,omitempty" json:"color,omitempty"` // Opaque display tag, no core semantics
}

// AppointmentDraft holds in-progress form data before it becomes one or more
// Appointment records.
type AppointmentDraft struct {
	EmployeeID  int    `json:"employeeId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Client      string `json:"client"`
	ServiceType string `json:"serviceType"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Color       string `json:"color"`
}

// AdditionalEvent is a same-day extra booking composed alongside a draft.
// It shares the draft's client and date but carries its own slot details.
// Never persisted on its own; the factory turns each into a full Appointment.
type AdditionalEvent struct {
	EmployeeID  int    `json:"employeeId"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	ServiceType string `json:"serviceType"`
	Title       string `json:"title"`
	Notes       string `json:"notes"`
}

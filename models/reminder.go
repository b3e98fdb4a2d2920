package models

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	EmployeeID    int    `json:"employeeId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Client        string `json:"client"`
	ServiceType   string `json:"serviceType"`
}

package models

// Recurrence cadence values for RecurringTreatment.FrequencyType.
const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// RecurringTreatment is a standing rule that generates appointments on a
// weekly or monthly cadence until deactivated or its end date passes.
// Exactly one of PreferredDayOfWeek/PreferredDayOfMonth is meaningful,
// selected by FrequencyType.
type RecurringTreatment struct {
	ID                  string `bson:"id" json:"id"`
	ClientID            string `bson:"client_id" json:"clientId"`
	EmployeeID          int    `bson:"employee_id" json:"employeeId"`
	ServiceType         string `bson:"service_type" json:"serviceType"`
	Duration            int    `bson:"duration" json:"duration"` // minutes
	Notes               string `bson:"notes,omitempty" json:"notes,omitempty"`
	FrequencyType       string `bson:"frequency_type" json:"frequencyType"`   // "weekly" or "monthly"
	FrequencyValue      int    `bson:"frequency_value" json:"frequencyValue"` // every N weeks/months
	PreferredDayOfWeek  int    `bson:"preferred_day_of_week" json:"preferredDayOfWeek"`   // 0=Sunday .. 6=Saturday, weekly only
	PreferredDayOfMonth int    `bson:"preferred_day_of_month" json:"preferredDayOfMonth"` // 1-31, monthly only
	PreferredTime       string `bson:"preferred_time,omitempty" json:"preferredTime,omitempty"` // "HH:mm"; empty means 09:00
	IsActive            bool   `bson:"is_active" json:"isActive"`
	StartDate           string `bson:"start_date" json:"startDate"`                  // "YYYY-MM-DD"
	EndDate             string `bson:"end_date,omitempty" json:"endDate,omitempty"` // open-ended when empty
}

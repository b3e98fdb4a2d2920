package models

// Employee represents a salon staff member. Read-only from the scheduling
// core's perspective; appointments reference employees by ID.
type Employee struct {
	ID             int      `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Specialization string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Color          string   `bson:"color,omitempty" json:"color,omitempty"`
	VacationDates  []string `bson:"vacation_dates,omitempty" json:"vacationDates,omitempty"` // "YYYY-MM-DD" entries
}

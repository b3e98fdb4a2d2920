package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	// Appointment endpoints.
	ListAppointmentsHandler   gin.HandlerFunc
	CreateBookingHandler      gin.HandlerFunc
	ReplaceAppointmentHandler gin.HandlerFunc
	DeleteAppointmentHandler  gin.HandlerFunc
	OccupiedSlotsHandler      gin.HandlerFunc
	CheckConflictHandler      gin.HandlerFunc

	// Recurring treatment endpoints.
	RunRecurringHandler gin.HandlerFunc

	// Directory endpoints.
	ListEmployeesHandler  gin.HandlerFunc
	ListClientsHandler    gin.HandlerFunc
	ListTreatmentsHandler gin.HandlerFunc
}

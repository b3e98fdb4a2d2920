package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/scheduling"
)

// AppointmentHandler exposes the scheduling engine over HTTP.
type AppointmentHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// ListAppointmentsHandler returns the appointment list through the sync
// cache. `?refresh=true` forces a store round-trip.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	force := c.Query("refresh") == "true"
	result := h.Service.ListAppointments(c.Request.Context(), force)
	if !result.Success && result.Data == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Err})
		return
	}
	// Stale data is served with success=false rather than failing hard.
	c.JSON(http.StatusOK, result)
}

// CreateBookingHandler validates a draft and persists the expanded batch:
// the main appointment, any additional same-day events, and recurring
// copies for the selected dates.
func (h *AppointmentHandler) CreateBookingHandler(c *gin.Context) {
	var req scheduling.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ReplaceAppointmentHandler overwrites one appointment wholesale.
func (h *AppointmentHandler) ReplaceAppointmentHandler(c *gin.Context) {
	var a models.Appointment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	a.ID = c.Param("id")

	if err := h.Service.ReplaceAppointment(c.Request.Context(), a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAppointmentHandler removes one appointment by id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteAppointment(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		h.Logger.Error("failed to delete appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// OccupiedSlotsHandler returns the occupied 30-minute stamps for an
// employee on a date, for free-slot rendering.
func (h *AppointmentHandler) OccupiedSlotsHandler(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Query("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId must be an integer"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	slots, err := h.Service.GetOccupiedSlots(c.Request.Context(), employeeID, date)
	if err != nil {
		h.Logger.Error("failed to compute occupied slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute occupied slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employeeId": employeeID, "date": date, "occupied": slots})
}

// CheckConflictHandler probes a candidate appointment for time overlap.
// Detection only; whether a conflict blocks the save is the caller's policy.
func (h *AppointmentHandler) CheckConflictHandler(c *gin.Context) {
	var candidate models.Appointment
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	check, err := h.Service.CheckConflict(c.Request.Context(), candidate)
	if err != nil {
		h.Logger.Error("conflict check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "conflict check failed"})
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *AppointmentHandler) respondSchedulingError(c *gin.Context, err error) {
	switch {
	case scheduling.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case scheduling.IsConflictError(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("scheduling operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scheduling operation failed"})
	}
}

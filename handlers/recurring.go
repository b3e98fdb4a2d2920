package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/scheduling"
)

// defaultRecurringWindowDays bounds a run when no end date is given.
const defaultRecurringWindowDays = 90

// RecurringHandler exposes recurring-treatment expansion over HTTP.
type RecurringHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewRecurringHandler constructs a RecurringHandler.
func NewRecurringHandler(svc scheduling.SchedulingService, logger *zap.Logger) *RecurringHandler {
	return &RecurringHandler{Service: svc, Logger: logger}
}

// RunRecurringHandler expands all active recurring treatments across a date
// window and persists the generated appointments. Reruns over the same
// window are idempotent.
func (h *RecurringHandler) RunRecurringHandler(c *gin.Context) {
	var input struct {
		Start string `json:"start"` // "YYYY-MM-DD", defaults to today
		End   string `json:"end"`   // "YYYY-MM-DD", defaults to start + 90 days
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if input.Start != "" {
		parsed, err := time.Parse("2006-01-02", input.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	end := start.AddDate(0, 0, defaultRecurringWindowDays)
	if input.End != "" {
		parsed, err := time.Parse("2006-01-02", input.End)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
			return
		}
		end = parsed
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}

	result, err := h.Service.RunRecurring(c.Request.Context(), start, end)
	if err != nil {
		h.Logger.Error("recurring run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recurring run failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	clientRepo "salonbook/database/repository/client"
	employeeRepo "salonbook/database/repository/employee"
	treatmentRepo "salonbook/database/repository/treatment"
)

// DirectoryHandler serves the read-only reference data the booking forms
// need: employees, clients, and recurring treatment rules.
type DirectoryHandler struct {
	Employees  employeeRepo.EmployeeRepository
	Clients    clientRepo.ClientRepository
	Treatments treatmentRepo.TreatmentRepository
	Logger     *zap.Logger
}

// NewDirectoryHandler constructs a DirectoryHandler.
func NewDirectoryHandler(
	employees employeeRepo.EmployeeRepository,
	clients clientRepo.ClientRepository,
	treatments treatmentRepo.TreatmentRepository,
	logger *zap.Logger,
) *DirectoryHandler {
	return &DirectoryHandler{Employees: employees, Clients: clients, Treatments: treatments, Logger: logger}
}

func (h *DirectoryHandler) ListEmployeesHandler(c *gin.Context) {
	employees, err := h.Employees.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *DirectoryHandler) ListClientsHandler(c *gin.Context) {
	clients, err := h.Clients.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// ListTreatmentsHandler returns recurring treatments, optionally filtered
// by `?clientId=`.
func (h *DirectoryHandler) ListTreatmentsHandler(c *gin.Context) {
	treatments, err := h.Treatments.List(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		h.Logger.Error("failed to list treatments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list treatments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatments": treatments})
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbook/handlers"
)

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/appointments")
	{
		api.GET("", hb.ListAppointmentsHandler)
		api.POST("", hb.CreateBookingHandler)
		api.PUT("/:id", hb.ReplaceAppointmentHandler)
		api.DELETE("/:id", hb.DeleteAppointmentHandler)
		api.GET("/occupied", hb.OccupiedSlotsHandler)
		api.POST("/conflict", hb.CheckConflictHandler)
	}

	recurring := r.Group("/api/recurring")
	{
		recurring.POST("/run", hb.RunRecurringHandler)
	}

	directory := r.Group("/api")
	{
		directory.GET("/employees", hb.ListEmployeesHandler)
		directory.GET("/clients", hb.ListClientsHandler)
		directory.GET("/treatments", hb.ListTreatmentsHandler)
	}
}

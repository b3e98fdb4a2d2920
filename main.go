// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	appointmentRepo "salonbook/database/repository/appointment"
	clientRepo "salonbook/database/repository/client"
	employeeRepo "salonbook/database/repository/employee"
	treatmentRepo "salonbook/database/repository/treatment"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/notification"
	"salonbook/services/scheduling"
	"salonbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitReminderQueue()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	cliRepo := clientRepo.NewMongoClientRepo()
	empRepo := employeeRepo.NewMongoEmployeeRepo()
	treatRepo := treatmentRepo.NewMongoTreatmentRepo()

	// services.
	notificationService := &notification.LogNotificationService{Logger: logger}

	cache := scheduling.NewSyncCache(
		apptRepo.List,
		time.Duration(config.AppConfig.CacheRefreshMs)*time.Millisecond,
	)
	saver := &scheduling.BatchSaver{
		Pause:  time.Duration(config.AppConfig.BatchSavePauseMs) * time.Millisecond,
		Logger: logger,
	}
	engine := &scheduling.DefaultSchedulingEngine{
		Appointments: apptRepo,
		Clients:      cliRepo,
		Treatments:   treatRepo,
		Cache:        cache,
		Saver:        saver,
		Notification: notificationService,
		Logger:       logger,
	}

	appointmentHandler := handlers.NewAppointmentHandler(engine, logger)
	recurringHandler := handlers.NewRecurringHandler(engine, logger)
	directoryHandler := handlers.NewDirectoryHandler(empRepo, cliRepo, treatRepo, logger)

	// Background reminder worker and scheduler.
	cron.InitReminderWorker(notificationService)
	cron.StartReminderScheduler(apptRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListAppointmentsHandler:   appointmentHandler.ListAppointmentsHandler,
		CreateBookingHandler:      appointmentHandler.CreateBookingHandler,
		ReplaceAppointmentHandler: appointmentHandler.ReplaceAppointmentHandler,
		DeleteAppointmentHandler:  appointmentHandler.DeleteAppointmentHandler,
		OccupiedSlotsHandler:      appointmentHandler.OccupiedSlotsHandler,
		CheckConflictHandler:      appointmentHandler.CheckConflictHandler,

		RunRecurringHandler: recurringHandler.RunRecurringHandler,

		ListEmployeesHandler:  directoryHandler.ListEmployeesHandler,
		ListClientsHandler:    directoryHandler.ListClientsHandler,
		ListTreatmentsHandler: directoryHandler.ListTreatmentsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

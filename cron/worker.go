package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"salonbook/config"
	appointmentRepo "salonbook/database/repository/appointment"
	"salonbook/models"
	"salonbook/services/notification"
	"salonbook/utils"
)

const TypeReminderSend = "appointment:reminder"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		body := fmt.Sprintf("%s has a %s appointment on %s at %s (employee %d)",
			p.Client, p.ServiceType, p.Date, p.Time, p.EmployeeID)
		if err := notifSvc.Notify(ctx, "Upcoming appointment", body); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}

// NewReminderClient returns an asynq client for enqueueing reminder tasks.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// EnqueueUpcomingReminders queues one reminder task per appointment
// scheduled for tomorrow.
func EnqueueUpcomingReminders(ctx context.Context, client *asynq.Client, repo appointmentRepo.AppointmentRepository, logger *zap.Logger) error {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	appointments, err := repo.ListByDate(ctx, tomorrow)
	if err != nil {
		return fmt.Errorf("failed to load appointments for %s: %w", tomorrow, err)
	}

	for _, a := range appointments {
		payload, err := json.Marshal(models.ReminderPayload{
			AppointmentID: a.ID,
			EmployeeID:    a.EmployeeID,
			Date:          a.Date,
			Time:          a.Time,
			Client:        a.Client,
			ServiceType:   a.ServiceType,
		})
		if err != nil {
			logger.Warn("failed to marshal reminder payload", zap.String("appointmentID", a.ID), zap.Error(err))
			continue
		}
		if _, err := client.EnqueueContext(ctx, asynq.NewTask(TypeReminderSend, payload)); err != nil {
			logger.Warn("failed to enqueue reminder", zap.String("appointmentID", a.ID), zap.Error(err))
		}
	}

	logger.Info("enqueued appointment reminders",
		zap.String("date", tomorrow),
		zap.Int("count", len(appointments)))
	return nil
}

// StartReminderScheduler enqueues tomorrow's reminders once at startup and
// then every 24 hours.
func StartReminderScheduler(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) {
	client := NewReminderClient()
	go func() {
		for {
			if err := EnqueueUpcomingReminders(context.Background(), client, repo, logger); err != nil {
				logger.Warn("reminder scheduling failed", zap.Error(err))
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := utils.GetReminderQueueClient()
	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

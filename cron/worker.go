package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"darsehha/config"
	appointmentRepo "darsehha/database/repository/appointment"
	"darsehha/models"
	"darsehha/services/admin"
	"darsehha/services/tasks"
	"darsehha/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("Invalid reminder payload", zap.Error(err))
		return err
	}

	// Delivery channel (email/SMS) is handled by the front-desk system; the
	// worker records that the reminder fired.
	logger.Info("Appointment reminder due",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("patient", p.FullName),
		zap.String("email", p.PatientEmail),
		zap.String("department", p.Department),
		zap.String("slot", p.Date+" "+p.Time))
	return nil
}

// StartRetentionSweep deletes terminal appointments older than the
// configured data-retention window, once a day.
func StartRetentionSweep(repo appointmentRepo.AppointmentRepository, settings *admin.SettingsService) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			days := settings.RetentionDays(ctx)
			cutoff := time.Now().AddDate(0, 0, -days)

			deleted, err := repo.DeleteOlderThan(ctx, cutoff)
			cancel()
			if err != nil {
				utils.GetLogger().Error("Retention sweep failed", zap.Error(err))
				continue
			}
			if deleted > 0 {
				utils.GetLogger().Info("Retention sweep removed old appointments",
					zap.Int64("deleted", deleted),
					zap.Int("retentionDays", days))
			}
		}
	}()
}

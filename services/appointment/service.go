// File: services/appointment/service.go
package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appointmentRepo "darsehha/database/repository/appointment"
	"darsehha/models"
	"darsehha/services/tasks"
	"darsehha/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	latestApptPrefix = "appt:latest:"
	latestApptTTL    = 24 * time.Hour
)

type DefaultAppointmentService struct {
	Repo              appointmentRepo.AppointmentRepository
	Cache             *redis.Client
	Queue             *asynq.Client
	ReminderLeadHours int
}

// Submit persists a completed chatbot record, caches the patient's latest
// submission, and schedules a reminder ahead of the appointment slot.
func (s *DefaultAppointmentService) Submit(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appt, err := s.Repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to store appointment: %w", err)
	}
	logger.Info("Appointment submitted",
		zap.String("id", appt.ID),
		zap.String("department", appt.Department),
		zap.String("date", appt.AppointmentDate))

	s.cacheLatest(ctx, appt)
	s.scheduleReminder(appt)

	return appt, nil
}

func (s *DefaultAppointmentService) cacheLatest(ctx context.Context, appt *models.Appointment) {
	if s.Cache == nil || appt.PatientEmail == "" {
		return
	}
	data, err := json.Marshal(appt)
	if err != nil {
		return
	}
	key := latestApptPrefix + appt.PatientEmail
	if err := s.Cache.Set(ctx, key, data, latestApptTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache latest appointment", zap.Error(err))
	}
}

// LatestByPatient returns the patient's most recent submission, cache-aside:
// the Redis entry written on Submit is consulted first, and a miss falls back
// to storage and repopulates the cache. Returns nil when the patient has no
// appointments.
func (s *DefaultAppointmentService) LatestByPatient(ctx context.Context, email string) (*models.Appointment, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, latestApptPrefix+email).Result(); err == nil {
			var appt models.Appointment
			if json.Unmarshal([]byte(data), &appt) == nil {
				return &appt, nil
			}
		}
	}

	appts, err := s.Repo.GetByPatientEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest appointment: %w", err)
	}
	if len(appts) == 0 {
		return nil, nil
	}
	latest := appts[0]
	s.cacheLatest(ctx, &latest)
	return &latest, nil
}

func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment) {
	if s.Queue == nil {
		return
	}
	logger := utils.GetLogger()

	slot, err := time.ParseInLocation("2006-01-02 15:04", appt.AppointmentDate+" "+appt.AppointmentTime, time.Local)
	if err != nil {
		logger.Warn("Could not parse appointment slot for reminder", zap.Error(err))
		return
	}
	fireAt := slot.Add(-time.Duration(s.ReminderLeadHours) * time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientEmail:  appt.PatientEmail,
		FullName:      appt.FullName,
		Department:    appt.Department,
		Date:          appt.AppointmentDate,
		Time:          appt.AppointmentTime,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("Failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		logger.Warn("Failed to enqueue reminder task", zap.Error(err))
	}
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListByPatient(ctx context.Context, email string) ([]models.Appointment, error) {
	return s.Repo.GetByPatientEmail(ctx, email)
}

func (s *DefaultAppointmentService) List(ctx context.Context, status string) ([]models.Appointment, error) {
	return s.Repo.List(ctx, status)
}

func (s *DefaultAppointmentService) Approve(ctx context.Context, id, adminNotes string) (*models.Appointment, error) {
	return s.Repo.UpdateStatus(ctx, id, models.AppointmentStatusApproved, adminNotes)
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, adminNotes string) (*models.Appointment, error) {
	return s.Repo.UpdateStatus(ctx, id, models.AppointmentStatusCancelled, adminNotes)
}

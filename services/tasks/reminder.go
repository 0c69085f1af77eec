package tasks

import (
	"encoding/json"
	"time"

	"darsehha/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an appointment-reminder task scheduled at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

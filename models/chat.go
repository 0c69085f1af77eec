package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResult is what the dialogue engine returns for one processed message.
type ChatResult struct {
	Reply     string            `json:"response"`
	Stage     string            `json:"stage"`
	Fields    map[string]string `json:"data,omitempty"`
	Completed bool              `json:"completed"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientEmail  string `json:"patientEmail"`
	FullName      string `json:"fullName"`
	Department    string `json:"department"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

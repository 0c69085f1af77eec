// File: services/chatbot/interface.go
package chatbot

import "darsehha/models"

// ChatService is the conversational booking engine. It owns all per-session
// dialogue state; callers interact with sessions only through these entry
// points.
type ChatService interface {
	// ProcessMessage runs one inbound message through the session's current
	// stage and returns the reply. Malformed user text never yields an error,
	// only a clarifying reply; an error means the call itself was invalid.
	ProcessMessage(message, sessionID string) (*models.ChatResult, error)

	// CompletedRecord returns the finished booking once the session has
	// reached the completed stage, shaped for the appointment storage system.
	CompletedRecord(sessionID string) (*models.AppointmentRequest, bool)

	// ResetSession discards the session's state. Resetting an unknown
	// session is a no-op.
	ResetSession(sessionID string)
}

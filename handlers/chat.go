// File: handlers/chat.go
package handlers

import (
	"net/http"
	"time"

	"darsehha/middleware"
	"darsehha/models"
	"darsehha/services/appointment"
	"darsehha/services/chatbot"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the chatbot conversation endpoints.
type ChatHandler struct {
	Chat         chatbot.ChatService
	Appointments appointment.AppointmentService
	Logger       *zap.Logger
}

func NewChatHandler(chat chatbot.ChatService, appts appointment.AppointmentService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Chat: chat, Appointments: appts, Logger: logger}
}

// HandleChat processes one chat message for the caller's session.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Message cannot be empty"})
		return
	}

	sessionID := middleware.CallerEmail(c)
	result, err := h.Chat.ProcessMessage(req.Message, sessionID)
	if err != nil {
		h.Logger.Error("Failed to process chat message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error processing message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  result.Reply,
		"stage":     result.Stage,
		"completed": result.Completed,
	})
}

// HandleBookAppointment submits the session's completed record to the
// appointment storage system.
func (h *ChatHandler) HandleBookAppointment(c *gin.Context) {
	sessionID := middleware.CallerEmail(c)

	record, ok := h.Chat.CompletedRecord(sessionID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "No appointment data found. Please start a new conversation.",
		})
		return
	}

	// Re-validate the appointment date before handing the record off; the
	// conversation may have been completed days ago.
	apptDate, err := time.Parse("2006-01-02", record.AppointmentDate)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Appointment date is invalid."})
		return
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if apptDate.Before(today) {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Appointment date cannot be in the past."})
		return
	}

	// Attach the caller-supplied identity; anonymous sessions submit with an
	// empty patient email.
	if sessionID != middleware.AnonymousIdentity {
		record.PatientEmail = sessionID
	}

	appt, err := h.Appointments.Submit(c.Request.Context(), *record)
	if err != nil {
		h.Logger.Error("Failed to submit appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error booking appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment booked successfully! We will review your request and get back to you soon.",
		"appointment": appt,
	})
}

// HandleChatReset discards the caller's conversation state.
func (h *ChatHandler) HandleChatReset(c *gin.Context) {
	sessionID := middleware.CallerEmail(c)
	h.Chat.ResetSession(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Conversation reset successfully",
	})
}

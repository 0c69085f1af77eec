// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"darsehha/middleware"
	"darsehha/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes appointment management endpoints for patients
// and clinic admins.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

func NewAppointmentHandler(svc appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// ListAppointments returns all appointments, optionally filtered by status.
// Admin only.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	status := c.Query("status")
	appts, err := h.Service.List(c.Request.Context(), status)
	if err != nil {
		h.Logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appts})
}

// GetAppointment returns one appointment by id for the admin detail view.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// LatestAppointment returns the caller's most recent submission.
func (h *AppointmentHandler) LatestAppointment(c *gin.Context) {
	email := middleware.CallerEmail(c)
	appt, err := h.Service.LatestByPatient(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("Failed to load latest appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load latest appointment"})
		return
	}
	if appt == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "No appointments found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// MyAppointments returns the caller's own appointment history.
func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	email := middleware.CallerEmail(c)
	appts, err := h.Service.ListByPatient(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("Failed to list patient appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appts})
}

type adminActionRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// ApproveAppointment marks an appointment approved. Admin only.
func (h *AppointmentHandler) ApproveAppointment(c *gin.Context) {
	var req adminActionRequest
	_ = c.ShouldBindJSON(&req)

	appt, err := h.Service.Approve(c.Request.Context(), c.Param("id"), req.AdminNotes)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment has been approved.",
		"admin_notes": req.AdminNotes,
		"appointment": appt,
	})
}

// CancelAppointment marks an appointment cancelled. Admin only.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	var req adminActionRequest
	_ = c.ShouldBindJSON(&req)

	appt, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), req.AdminNotes)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment has been cancelled.",
		"admin_notes": req.AdminNotes,
		"appointment": appt,
	})
}

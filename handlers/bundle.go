// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so the routes package can be
// wired from one place.
type HandlerBundle struct {
	// Auth endpoints.
	LoginHandler gin.HandlerFunc

	// Chat endpoints.
	HandleChat            gin.HandlerFunc
	HandleBookAppointment gin.HandlerFunc
	HandleChatReset       gin.HandlerFunc

	// Appointment endpoints.
	ListAppointments   gin.HandlerFunc
	GetAppointment     gin.HandlerFunc
	MyAppointments     gin.HandlerFunc
	LatestAppointment  gin.HandlerFunc
	ApproveAppointment gin.HandlerFunc
	CancelAppointment  gin.HandlerFunc

	// Settings endpoints.
	PublicSettings gin.HandlerFunc
	LoadSettings   gin.HandlerFunc
	SaveSettings   gin.HandlerFunc
}

// File: services/appointment/interface.go
package appointment

import (
	"context"

	"darsehha/models"
)

// AppointmentService is the storage-facing collaborator the chatbot hands a
// finished record to. It owns persistence, caching and reminder scheduling;
// it never sees conversation state.
type AppointmentService interface {
	Submit(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	LatestByPatient(ctx context.Context, email string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, email string) ([]models.Appointment, error)
	List(ctx context.Context, status string) ([]models.Appointment, error)
	Approve(ctx context.Context, id, adminNotes string) (*models.Appointment, error)
	Cancel(ctx context.Context, id, adminNotes string) (*models.Appointment, error)
}

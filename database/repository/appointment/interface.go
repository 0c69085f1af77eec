package appointmentRepo

import (
	"context"
	"time"

	"darsehha/database"
	"darsehha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error)
	List(ctx context.Context, status string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status, adminNotes string) (*models.Appointment, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a new AppointmentRepository instance using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("darsehha")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

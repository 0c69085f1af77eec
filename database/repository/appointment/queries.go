package appointmentRepo

import (
	"context"

	"darsehha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByPatientEmail fetches all appointments submitted by a patient, newest first.
func (r *mongoAppointmentRepo) GetByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// List fetches all appointments, optionally filtered by status, newest first.
func (r *mongoAppointmentRepo) List(ctx context.Context, status string) ([]models.Appointment, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

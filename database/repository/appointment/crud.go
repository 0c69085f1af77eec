package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"darsehha/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new appointment with repository-assigned id, status and
// timestamps, and returns the stored record.
func (r *mongoAppointmentRepo) Create(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	now := time.Now()
	appt := models.Appointment{
		ID:                 uuid.New().String(),
		Status:             models.AppointmentStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
		AppointmentRequest: req,
	}

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// GetByID returns an appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateStatus sets a new status (and optional admin notes) on an appointment.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status, adminNotes string) (*models.Appointment, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"adminNotes": adminNotes,
		"updatedAt":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("appointment not found")
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// DeleteOlderThan removes terminal appointments created before the cutoff.
// Pending appointments are never swept.
func (r *mongoAppointmentRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"createdAt": bson.M{"$lt": cutoff},
		"status":    bson.M{"$in": []string{models.AppointmentStatusApproved, models.AppointmentStatusCancelled}},
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

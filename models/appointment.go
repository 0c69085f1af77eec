package models

import "time"

// Appointment statuses assigned by the storage system.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusCancelled = "cancelled"
)

// AppointmentRequest is the completed projection of a chatbot conversation,
// shaped for the appointment storage system. The chatbot guarantees every
// field carries a syntactically valid value before one of these is produced.
type AppointmentRequest struct {
	FullName         string `json:"fullName" bson:"fullName"`
	Phone            string `json:"phone" bson:"phone"`
	Email            string `json:"email" bson:"email"`
	DateOfBirth      string `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender           string `json:"gender" bson:"gender"`
	AppointmentDate  string `json:"appointmentDate" bson:"appointmentDate"`
	AppointmentTime  string `json:"appointmentTime" bson:"appointmentTime"`
	Department       string `json:"department" bson:"department"`
	DoctorPreference string `json:"doctorPreference" bson:"doctorPreference"`
	Reason           string `json:"reason" bson:"reason"`

	// PatientEmail is the authenticated identity of the caller, attached by
	// the web layer before submission; it is not collected by the chatbot.
	PatientEmail string `json:"patientEmail" bson:"patientEmail"`
}

// Appointment is a stored appointment record. The id, status and timestamps
// are assigned by the repository on creation, never by the chatbot.
type Appointment struct {
	ID         string    `json:"id" bson:"id"`
	Status     string    `json:"status" bson:"status"`
	AdminNotes string    `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`

	AppointmentRequest `bson:",inline"`
}

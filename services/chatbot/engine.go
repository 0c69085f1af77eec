// File: services/chatbot/engine.go
package chatbot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"darsehha/models"
)

// Stage is a position in the fixed dialogue sequence. Stages only ever
// advance forward, or reset from completed.
type Stage string

const (
	StageInitial              Stage = "initial"
	StageCollectingName       Stage = "collecting_name"
	StageCollectingPhone      Stage = "collecting_phone"
	StageCollectingEmail      Stage = "collecting_email"
	StageCollectingDOB        Stage = "collecting_dob"
	StageCollectingGender     Stage = "collecting_gender"
	StageCollectingDepartment Stage = "collecting_department"
	StageCollectingDate       Stage = "collecting_date"
	StageCollectingTime       Stage = "collecting_time"
	StageCollectingReason     Stage = "collecting_reason"
	StageCompleted            Stage = "completed"
)

// Session field keys, populated in stage order.
const (
	fieldFullName        = "fullName"
	fieldPhone           = "phone"
	fieldEmail           = "email"
	fieldDateOfBirth     = "dateOfBirth"
	fieldGender          = "gender"
	fieldDepartment      = "department"
	fieldAppointmentDate = "appointmentDate"
	fieldAppointmentTime = "appointmentTime"
	fieldReason          = "reason"
)

type session struct {
	Stage  Stage
	Fields map[string]string
}

func newSession() *session {
	return &session{Stage: StageInitial, Fields: make(map[string]string)}
}

func (s *session) reset(stage Stage) {
	s.Stage = stage
	s.Fields = make(map[string]string)
}

// DefaultChatService is the in-memory dialogue engine. One mutex guards the
// session map and every session record, so reads and writes to a session's
// stage and fields are mutually exclusive.
type DefaultChatService struct {
	mu       sync.Mutex
	sessions map[string]*session

	// now supplies the current time for "today"/past-date checks.
	now       func() time.Time
	openHour  int
	closeHour int
}

// NewChatService returns a chat engine enforcing the given business-hour
// bounds (inclusive) on appointment times.
func NewChatService(openHour, closeHour int) *DefaultChatService {
	return &DefaultChatService{
		sessions:  make(map[string]*session),
		now:       time.Now,
		openHour:  openHour,
		closeHour: closeHour,
	}
}

// ProcessMessage dispatches one message to the session's current stage
// handler. The session is created lazily on first contact and mutated in
// place on every later message for the same identifier.
func (s *DefaultChatService) ProcessMessage(message, sessionID string) (*models.ChatResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("chatbot: session identifier is required")
	}

	msg := strings.ToLower(strings.TrimSpace(message))

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = newSession()
		s.sessions[sessionID] = sess
	}

	reply := s.dispatch(msg, sess)

	fields := make(map[string]string, len(sess.Fields))
	for k, v := range sess.Fields {
		fields[k] = v
	}
	return &models.ChatResult{
		Reply:     reply,
		Stage:     string(sess.Stage),
		Fields:    fields,
		Completed: sess.Stage == StageCompleted,
	}, nil
}

func (s *DefaultChatService) dispatch(msg string, sess *session) string {
	switch sess.Stage {
	case StageInitial:
		return s.handleInitial(msg, sess)
	case StageCollectingName:
		return s.handleName(msg, sess)
	case StageCollectingPhone:
		return s.handlePhone(msg, sess)
	case StageCollectingEmail:
		return s.handleEmail(msg, sess)
	case StageCollectingDOB:
		return s.handleDateOfBirth(msg, sess)
	case StageCollectingGender:
		return s.handleGender(msg, sess)
	case StageCollectingDepartment:
		return s.handleDepartment(msg, sess)
	case StageCollectingDate:
		return s.handleDate(msg, sess)
	case StageCollectingTime:
		return s.handleTime(msg, sess)
	case StageCollectingReason:
		return s.handleReason(msg, sess)
	case StageCompleted:
		return s.handleCompleted(msg, sess)
	}
	return "I'm not sure how to help with that. Could you please try again?"
}

// CompletedRecord projects the collected fields into the externally agreed
// record shape. The visit reason doubles as the doctor-preference field; that
// pairing is intentional.
func (s *DefaultChatService) CompletedRecord(sessionID string) (*models.AppointmentRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.Stage != StageCompleted || len(sess.Fields) == 0 {
		return nil, false
	}
	f := sess.Fields
	return &models.AppointmentRequest{
		FullName:         f[fieldFullName],
		Phone:            f[fieldPhone],
		Email:            f[fieldEmail],
		DateOfBirth:      f[fieldDateOfBirth],
		Gender:           f[fieldGender],
		AppointmentDate:  f[fieldAppointmentDate],
		AppointmentTime:  f[fieldAppointmentTime],
		Department:       f[fieldDepartment],
		DoctorPreference: f[fieldReason],
		Reason:           f[fieldReason],
	}, true
}

// ResetSession discards all state for the given session identifier.
func (s *DefaultChatService) ResetSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

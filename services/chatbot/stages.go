// File: services/chatbot/stages.go
package chatbot

import (
	"fmt"
	"math/rand"
)

const initialFallbackReply = "Hello! I'm here to help you book an appointment at DARSEHHA Medical Clinic. Would you like to schedule an appointment? I can also answer questions about our departments, hours, or help with any symptoms you're experiencing."

// handleInitial checks intents in priority order; the first match
// short-circuits the rest. Only booking changes the stage.
func (s *DefaultChatService) handleInitial(msg string, sess *session) string {
	for _, name := range initialIntentOrder {
		if !MatchIntent(msg, name) {
			continue
		}
		if name == IntentBookAppointment {
			sess.Stage = StageCollectingName
			return PickReply(name) + " First, could you tell me your full name?"
		}
		return PickReply(name)
	}
	return initialFallbackReply
}

func (s *DefaultChatService) handleName(msg string, sess *session) string {
	name, ok := extractName(msg)
	if !ok {
		return "I didn't catch your name. Could you please tell me your full name?"
	}
	sess.Fields[fieldFullName] = name
	sess.Stage = StageCollectingPhone
	ack := nameAckReplies[rand.Intn(len(nameAckReplies))]
	return ReplyWithName(ack, name)
}

func (s *DefaultChatService) handlePhone(msg string, sess *session) string {
	phone, ok := extractPhone(msg)
	if !ok {
		return "I need a valid phone number. Please provide your phone number."
	}
	sess.Fields[fieldPhone] = phone
	sess.Stage = StageCollectingEmail
	return "Got it! What's your email address?"
}

func (s *DefaultChatService) handleEmail(msg string, sess *session) string {
	email, ok := extractEmail(msg)
	if !ok {
		return "I need a valid email address. Please provide your email."
	}
	sess.Fields[fieldEmail] = email
	sess.Stage = StageCollectingDOB
	return "Great! What's your date of birth? (Please use YYYY-MM-DD format)"
}

func (s *DefaultChatService) handleDateOfBirth(msg string, sess *session) string {
	dob, status := parseDateOfBirth(msg)
	switch status {
	case parseOK:
		sess.Fields[fieldDateOfBirth] = dob
		sess.Stage = StageCollectingGender
		return "Thanks! What's your gender? (Male/Female/Other)"
	case parseInvalid:
		return "Please provide a valid date in YYYY-MM-DD format."
	default:
		return "Please provide your date of birth in YYYY-MM-DD format."
	}
}

func (s *DefaultChatService) handleGender(msg string, sess *session) string {
	gender, ok := matchGender(msg)
	if !ok {
		return "Please specify your gender: Male, Female, or Other."
	}
	sess.Fields[fieldGender] = gender
	sess.Stage = StageCollectingDepartment
	return "Thank you! What department would you like to visit? (Cardiology, Dermatology, General Medicine, Pediatrics, Orthopedics)"
}

func (s *DefaultChatService) handleDepartment(msg string, sess *session) string {
	department, ok := matchDepartment(msg)
	if !ok {
		return "Please choose from: Cardiology, Dermatology, General Medicine, Pediatrics, or Orthopedics."
	}
	sess.Fields[fieldDepartment] = department
	sess.Stage = StageCollectingDate
	return fmt.Sprintf("Excellent! When would you like to schedule your %s appointment? Please provide a date (YYYY-MM-DD).", department)
}

func (s *DefaultChatService) handleDate(msg string, sess *session) string {
	date, status := resolveAppointmentDate(msg, s.now())
	switch status {
	case parseOK:
		sess.Fields[fieldAppointmentDate] = date
		sess.Stage = StageCollectingTime
		return fmt.Sprintf("Great! What time would you prefer? (Format: HH:MM, we're open %d:00-%d:00)", s.openHour, s.closeHour)
	case parsePast:
		return "Please choose a date that's today or in the future."
	case parseInvalid:
		return "Please provide a valid date in YYYY-MM-DD format."
	default:
		return "Please provide a date in YYYY-MM-DD format, or say 'today' or 'tomorrow'."
	}
}

func (s *DefaultChatService) handleTime(msg string, sess *session) string {
	timeStr, status := resolveAppointmentTime(msg, s.openHour, s.closeHour)
	switch status {
	case parseOK:
		sess.Fields[fieldAppointmentTime] = timeStr
		sess.Stage = StageCollectingReason
		return "Almost done! Do you have any specific doctor preference or reason for your visit?"
	case parseOutOfHours:
		return fmt.Sprintf("Please choose a time between %d:00 and %d:00 (our business hours).", s.openHour, s.closeHour)
	default:
		return fmt.Sprintf("Please provide a time in HH:MM format (24-hour) or like '2 PM'. We're open %d:00-%d:00.", s.openHour, s.closeHour)
	}
}

func (s *DefaultChatService) handleReason(msg string, sess *session) string {
	if msg == "" {
		return "Could you briefly tell me the reason for your visit?"
	}
	sess.Fields[fieldReason] = msg
	sess.Stage = StageCompleted
	return s.renderSummary(sess)
}

// handleCompleted is a quasi-initial state: gratitude keeps the record,
// goodbye clears everything, a new booking request fast-restarts the
// collection stages.
func (s *DefaultChatService) handleCompleted(msg string, sess *session) string {
	switch {
	case MatchIntent(msg, IntentThanks):
		return PickReply(IntentThanks)
	case MatchIntent(msg, IntentGoodbye):
		sess.reset(StageInitial)
		return PickReply(IntentGoodbye)
	case MatchIntent(msg, IntentBookAppointment):
		sess.reset(StageCollectingName)
		return "Of course! I'd be happy to help you book another appointment. What's your full name?"
	default:
		return "Your appointment has been submitted! Is there anything else I can help you with, or would you like to book another appointment?"
	}
}

func (s *DefaultChatService) renderSummary(sess *session) string {
	f := sess.Fields
	return fmt.Sprintf(`Perfect! Here's your appointment summary:

👤 Name: %s
📞 Phone: %s
📧 Email: %s
🎂 Date of Birth: %s
👫 Gender: %s
🏥 Department: %s
📅 Date: %s
⏰ Time: %s
📝 Reason: %s

Your appointment request has been submitted! We'll review it and get back to you soon. Is there anything else I can help you with?`,
		f[fieldFullName], f[fieldPhone], f[fieldEmail], f[fieldDateOfBirth],
		f[fieldGender], f[fieldDepartment], f[fieldAppointmentDate],
		f[fieldAppointmentTime], f[fieldReason])
}

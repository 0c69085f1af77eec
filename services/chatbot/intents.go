// File: services/chatbot/intents.go
package chatbot

import (
	"math/rand"
	"regexp"
	"strings"
)

// intent is a named user purpose detected by pattern matching. Each intent
// carries an ordered list of compiled patterns and a set of candidate reply
// templates. The registry is immutable configuration, built once at init.
type intent struct {
	Name     string
	Patterns []*regexp.Regexp
	Replies  []string
}

// initialIntentOrder is the priority order checked at the initial stage.
// Emergency must come first so safety-critical responses are never shadowed
// by greeting or booking matches.
var initialIntentOrder = []string{
	IntentEmergency,
	IntentGreeting,
	IntentBookAppointment,
	IntentSymptomsInquiry,
	IntentDepartmentInquiry,
	IntentHoursInquiry,
	IntentInsuranceInquiry,
	IntentHelp,
}

// Intent names.
const (
	IntentGreeting          = "greeting"
	IntentEmergency         = "emergency"
	IntentBookAppointment   = "book_appointment"
	IntentSymptomsInquiry   = "symptoms_inquiry"
	IntentDepartmentInquiry = "department_inquiry"
	IntentHoursInquiry      = "hours_inquiry"
	IntentInsuranceInquiry  = "insurance_inquiry"
	IntentHelp              = "help"
	IntentThanks            = "thanks"
	IntentGoodbye           = "goodbye"
)

func patterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+e))
	}
	return compiled
}

var intentRegistry = map[string]intent{
	IntentGreeting: {
		Name: IntentGreeting,
		Patterns: patterns(
			`\b(hello|hi|hey|good morning|good afternoon|good evening)\b`,
			`\b(greetings|salutations)\b`,
		),
		Replies: []string{
			"Hello! I'm here to help you book an appointment at DARSEHHA Medical Clinic. How can I assist you today?",
			"Hi there! Welcome to DARSEHHA Medical Clinic. I can help you schedule an appointment. What would you like to do?",
			"Good day! I'm your appointment booking assistant. How may I help you?",
		},
	},
	IntentEmergency: {
		Name: IntentEmergency,
		Patterns: patterns(
			`\b(emergency|urgent|pain|hurt|bleeding|chest pain|trouble breathing)\b`,
			`\b(911|ambulance|er|emergency room)\b`,
			`\b(cant breathe|heart attack|stroke)\b`,
		),
		Replies: []string{
			"⚠️ If this is a medical emergency, please call 911 immediately or go to your nearest emergency room. For urgent but non-emergency care, you can call our emergency line at (555) 911-HELP. Would you like me to help you book a regular appointment instead?",
			"🚨 For emergencies, please call 911 or visit the emergency room immediately. If you need urgent care, call (555) 911-HELP. I can help you schedule a non-emergency appointment - would you like to do that?",
			"⚠️ This sounds urgent! Please call 911 for emergencies or (555) 911-HELP for urgent care. I'm here to help with regular appointment bookings when you're ready.",
		},
	},
	IntentBookAppointment: {
		Name: IntentBookAppointment,
		Patterns: patterns(
			`\b(book|schedule|make|arrange|set up|get)\b.*\b(appointment|visit|consultation|checkup)\b`,
			`\b(need|want|would like)\b.*\b(see|visit|meet)\b.*\b(doctor|physician|specialist)\b`,
			`\b(appointment|booking|schedule)\b`,
		),
		Replies: []string{
			"I'd be happy to help you book an appointment! Let me gather some information from you.",
			"Great! I'll help you schedule your appointment. Let's start with some details.",
			"Perfect! I can assist you with booking an appointment. Let me ask you a few questions.",
		},
	},
	IntentSymptomsInquiry: {
		Name: IntentSymptomsInquiry,
		Patterns: patterns(
			`\b(symptom|symptoms|feeling|sick|unwell)\b`,
			`\b(headache|fever|cough|cold|flu|nausea)\b`,
			`\b(rash|swelling|dizziness|fatigue|tired)\b`,
		),
		Replies: []string{
			"I understand you're not feeling well. While I can't provide medical advice, I can help you book an appointment with one of our doctors who can properly assess your symptoms. Would you like to schedule an appointment?",
			"It sounds like you may need medical attention. I'd be happy to help you book an appointment so a doctor can evaluate your symptoms properly. Shall we get started?",
			"I'm sorry you're experiencing symptoms. The best thing to do is see a doctor for proper evaluation. Would you like me to help you schedule an appointment today?",
		},
	},
	IntentDepartmentInquiry: {
		Name: IntentDepartmentInquiry,
		Patterns: patterns(
			`\b(department|departments|specialties|specialist|specialists)\b`,
			`\b(what do you have|what departments|available|options)\b`,
		),
		Replies: []string{
			"We have several departments at DARSEHHA Medical Clinic:\n🫀 Cardiology - Heart and cardiovascular health\n🩺 Dermatology - Skin, hair, and nail conditions\n👨‍⚕️ General Medicine - Primary care and family medicine\n👶 Pediatrics - Children's healthcare\n🦴 Orthopedics - Bones, joints, and musculoskeletal issues\n\nWhich department interests you?",
			"Here are our available departments:\n• Cardiology (Heart care)\n• Dermatology (Skin care)\n• General Medicine (Primary care)\n• Pediatrics (Children's care)\n• Orthopedics (Bone and joint care)\n\nWould you like to book an appointment in any of these?",
			"DARSEHHA Medical Clinic offers these specialties:\n- Cardiology for heart conditions\n- Dermatology for skin issues\n- General Medicine for overall health\n- Pediatrics for children\n- Orthopedics for bone/joint problems\n\nWhich would you like to book with?",
		},
	},
	IntentHoursInquiry: {
		Name: IntentHoursInquiry,
		Patterns: patterns(
			`\b(hours|open|close|schedule|time|timing)\b`,
			`\b(when.*open|what time|business hours)\b`,
		),
		Replies: []string{
			"Our clinic hours are:\n🕐 Monday-Friday: 8:00 AM - 8:00 PM\n🕐 Saturday: 9:00 AM - 6:00 PM\n🕐 Sunday: 10:00 AM - 4:00 PM\n\nWould you like to book an appointment during these hours?",
			"DARSEHHA Medical Clinic is open:\n• Weekdays: 8:00 AM to 8:00 PM\n• Saturday: 9:00 AM to 6:00 PM\n• Sunday: 10:00 AM to 4:00 PM\n\nI can help you schedule an appointment. What time works for you?",
			"We're open 7 days a week with extended hours:\nMon-Fri: 8 AM-8 PM, Sat: 9 AM-6 PM, Sun: 10 AM-4 PM. Ready to book your appointment?",
		},
	},
	IntentInsuranceInquiry: {
		Name: IntentInsuranceInquiry,
		Patterns: patterns(
			`\b(insurance|coverage|covered|accept|take)\b`,
			`\b(copay|deductible|billing|cost|price)\b`,
		),
		Replies: []string{
			"For insurance and billing questions, please contact our billing department at (555) 123-4567. I can help you book your appointment, and our staff will verify your insurance when you arrive. Shall we schedule your visit?",
			"Insurance verification is handled by our front desk team. I'd be happy to book your appointment first, and they'll sort out insurance details when you check in. Would you like to proceed with scheduling?",
			"Our billing team handles insurance questions at (555) 123-4567. Let's get your appointment scheduled first - they'll take care of insurance verification. Ready to book?",
		},
	},
	IntentHelp: {
		Name: IntentHelp,
		Patterns: patterns(
			`\b(help|assistance|support|how|what can you do)\b`,
		),
		Replies: []string{
			"I can help you book medical appointments at DARSEHHA Medical Clinic. Just tell me you'd like to book an appointment and I'll guide you through the process!",
			"I'm here to assist with appointment bookings. I can help you schedule visits with our doctors in various departments. Just say you want to book an appointment!",
			"I can help you schedule appointments with our medical professionals. Available departments include Cardiology, Dermatology, General Medicine, Pediatrics, and Orthopedics.",
		},
	},
	IntentThanks: {
		Name: IntentThanks,
		Patterns: patterns(
			`\b(thank you|thanks|thank|thx|appreciate)\b`,
		),
		Replies: []string{
			"You're welcome! Is there anything else I can help you with?",
			"My pleasure! Do you need any other assistance?",
			"You're very welcome! How else can I help you today?",
		},
	},
	IntentGoodbye: {
		Name: IntentGoodbye,
		Patterns: patterns(
			`\b(bye|goodbye|see you|farewell|take care)\b`,
		),
		Replies: []string{
			"Goodbye! Take care and see you at your appointment!",
			"Have a great day! We look forward to seeing you at DARSEHHA Medical Clinic!",
			"Bye! If you need to make any changes to your appointment, feel free to contact us again.",
		},
	},
}

// nameAckReplies confirm the collected name and prompt for the phone number.
// The {name} slot is filled with the title-cased name.
var nameAckReplies = []string{
	"Nice to meet you, {name}! What's your phone number?",
	"Thank you, {name}! Could you please provide your phone number?",
	"Hello {name}! I'll need your phone number to continue.",
}

// MatchIntent reports whether the message matches any pattern of the named
// intent. The message is expected to be lower-cased and trimmed by the
// caller. An unknown intent name matches nothing.
func MatchIntent(message, intentName string) bool {
	in, ok := intentRegistry[intentName]
	if !ok {
		return false
	}
	for _, p := range in.Patterns {
		if p.MatchString(message) {
			return true
		}
	}
	return false
}

// PickReply selects one of the intent's reply templates at random. Unknown
// intent names yield an empty string.
func PickReply(intentName string) string {
	in, ok := intentRegistry[intentName]
	if !ok || len(in.Replies) == 0 {
		return ""
	}
	return in.Replies[rand.Intn(len(in.Replies))]
}

// ReplyWithName fills the {name} slot of a reply template.
func ReplyWithName(template, name string) string {
	return strings.ReplaceAll(template, "{name}", name)
}

// intentReplies returns the full reply set for an intent, used by tests to
// assert a picked reply is one of the known templates.
func intentReplies(intentName string) []string {
	return intentRegistry[intentName].Replies
}

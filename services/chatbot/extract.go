// File: services/chatbot/extract.go
package chatbot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nameRe      = regexp.MustCompile(`\b(?:my name is|i am|i'm|call me)\s*([a-zA-Z\s]+)`)
	phoneRe     = regexp.MustCompile(`\+?\d(?:[-.\s()]{0,2}\d){6,14}`)
	emailRe     = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})\b`)
	clockRe     = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	meridiemRe  = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
)

// synonym maps one trigger keyword to its canonical value. Tables are ordered
// slices, not maps: the first matching key wins and the order is significant.
type synonym struct {
	Key   string
	Value string
}

var genderSynonyms = []synonym{
	{"male", "Male"},
	{"man", "Male"},
	{"m", "Male"},
	{"female", "Female"},
	{"woman", "Female"},
	{"f", "Female"},
	{"other", "Other"},
	{"o", "Other"},
}

var departmentSynonyms = []synonym{
	{"cardiology", "Cardiology"},
	{"heart", "Cardiology"},
	{"cardiac", "Cardiology"},
	{"dermatology", "Dermatology"},
	{"skin", "Dermatology"},
	{"dermat", "Dermatology"},
	{"general", "General Medicine"},
	{"medicine", "General Medicine"},
	{"family", "General Medicine"},
	{"gp", "General Medicine"},
	{"pediatrics", "Pediatrics"},
	{"children", "Pediatrics"},
	{"kids", "Pediatrics"},
	{"pediatric", "Pediatrics"},
	{"orthopedics", "Orthopedics"},
	{"bones", "Orthopedics"},
	{"joints", "Orthopedics"},
	{"orthopedic", "Orthopedics"},
}

// parseStatus reports the outcome of a stage extraction attempt.
type parseStatus int

const (
	parseOK parseStatus = iota
	parseMissing
	parseInvalid
	parsePast
	parseOutOfHours
)

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}

// extractName looks for an explicit "my name is / i am / call me X" pattern
// first; otherwise every alphabetic token longer than one character is
// treated as part of the name.
func extractName(message string) (string, bool) {
	if m := nameRe.FindStringSubmatch(message); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return titleCase(name), true
		}
	}
	var parts []string
	for _, word := range strings.Fields(message) {
		if len(word) > 1 && isAlphabetic(word) {
			parts = append(parts, titleCase(word))
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// extractPhone returns the first phone-shaped substring: 7 to 15 digits with
// optional separators, parentheses and a leading plus.
func extractPhone(message string) (string, bool) {
	phone := phoneRe.FindString(message)
	return phone, phone != ""
}

func extractEmail(message string) (string, bool) {
	email := emailRe.FindString(message)
	return email, email != ""
}

// normalizeDate zero-pads the date parts and verifies they form a real
// calendar date.
func normalizeDate(yearStr, monthStr, dayStr string) (string, bool) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	normalized := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	if _, err := time.Parse("2006-01-02", normalized); err != nil {
		return "", false
	}
	return normalized, true
}

// parseDateOfBirth accepts YYYY-M-D or M/D/YYYY style dates (with /, . or -
// separators) and normalizes them to zero-padded YYYY-MM-DD. Normalization is
// idempotent: an already-normalized date parses to itself.
func parseDateOfBirth(message string) (string, parseStatus) {
	if m := isoDateRe.FindStringSubmatch(message); m != nil {
		dob, ok := normalizeDate(m[1], m[2], m[3])
		if !ok {
			return "", parseInvalid
		}
		return dob, parseOK
	}
	if m := slashDateRe.FindStringSubmatch(message); m != nil {
		dob, ok := normalizeDate(m[3], m[1], m[2])
		if !ok {
			return "", parseInvalid
		}
		return dob, parseOK
	}
	return "", parseMissing
}

// resolveAppointmentDate recognizes "today", "tomorrow" or an explicit
// YYYY-M-D date, resolved against the supplied current time. Dates strictly
// before today (by calendar date only) are rejected as parsePast.
func resolveAppointmentDate(message string, now time.Time) (string, parseStatus) {
	var date string
	switch {
	case strings.Contains(message, "today"):
		date = now.Format("2006-01-02")
	case strings.Contains(message, "tomorrow"):
		date = now.AddDate(0, 0, 1).Format("2006-01-02")
	default:
		m := isoDateRe.FindStringSubmatch(message)
		if m == nil {
			return "", parseMissing
		}
		var ok bool
		date, ok = normalizeDate(m[1], m[2], m[3])
		if !ok {
			return "", parseInvalid
		}
	}

	resolved, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", parseInvalid
	}
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if resolved.Before(today) {
		return "", parsePast
	}
	return date, parseOK
}

// resolveAppointmentTime recognizes H:MM (zero-padding the hour), H am/pm
// (converted to 24-hour) or the words morning/afternoon/evening (mapped to
// fixed defaults). The resolved hour must lie within business bounds,
// openHour to closeHour inclusive.
func resolveAppointmentTime(message string, openHour, closeHour int) (string, parseStatus) {
	var timeStr string
	if m := clockRe.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		timeStr = fmt.Sprintf("%02d:%s", hour, m[2])
	} else if m := meridiemRe.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if m[2] == "pm" && hour != 12 {
			hour += 12
		} else if m[2] == "am" && hour == 12 {
			hour = 0
		}
		timeStr = fmt.Sprintf("%02d:00", hour)
	} else if strings.Contains(message, "morning") {
		timeStr = "10:00"
	} else if strings.Contains(message, "afternoon") {
		timeStr = "14:00"
	} else if strings.Contains(message, "evening") {
		timeStr = "16:00"
	} else {
		return "", parseMissing
	}

	hour, err := strconv.Atoi(strings.SplitN(timeStr, ":", 2)[0])
	if err != nil || hour < openHour || hour > closeHour {
		return "", parseOutOfHours
	}
	return timeStr, parseOK
}

func matchSynonym(message string, table []synonym) (string, bool) {
	for _, s := range table {
		if strings.Contains(message, s.Key) {
			return s.Value, true
		}
	}
	return "", false
}

func matchGender(message string) (string, bool) {
	return matchSynonym(message, genderSynonyms)
}

func matchDepartment(message string) (string, bool) {
	return matchSynonym(message, departmentSynonyms)
}

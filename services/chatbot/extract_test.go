package chatbot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		ok      bool
	}{
		{"explicit pattern", "my name is jane doe", "Jane Doe", true},
		{"call me", "call me bob", "Bob", true},
		{"plain tokens", "john smith", "John Smith", true},
		{"mixed tokens keep words only", "john smith 42", "John Smith", true},
		{"single letters dropped", "j s", "", false},
		{"digits only", "12345", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractName(tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		ok      bool
	}{
		{"dashed", "555-123-4567", "555-123-4567", true},
		{"bare digits", "call 15551234567 now", "15551234567", true},
		{"international", "+1 (555) 123-4567", "+1 (555) 123-4567", true},
		{"too short", "12345", "", false},
		{"no digits", "call me maybe", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractPhone(tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEmail(t *testing.T) {
	got, ok := extractEmail("it is john@example.com thanks")
	require.True(t, ok)
	assert.Equal(t, "john@example.com", got)

	_, ok = extractEmail("no email here")
	assert.False(t, ok)
}

func TestParseDateOfBirth(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		status  parseStatus
	}{
		{"iso", "1990-05-14", "1990-05-14", parseOK},
		{"iso unpadded", "1990-5-4", "1990-05-04", parseOK},
		{"slash style", "5/14/1990", "1990-05-14", parseOK},
		{"dot style", "5.14.1990", "1990-05-14", parseOK},
		{"not a calendar date", "1990-13-40", "", parseInvalid},
		{"no date at all", "sometime in spring", "", parseMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := parseDateOfBirth(tt.message)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateOfBirthIdempotent(t *testing.T) {
	first, status := parseDateOfBirth("6/7/1985")
	require.Equal(t, parseOK, status)

	second, status := parseDateOfBirth(first)
	require.Equal(t, parseOK, status)
	assert.Equal(t, first, second)
}

func TestResolveAppointmentDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		message string
		want    string
		status  parseStatus
	}{
		{"today", "today please", "2024-03-15", parseOK},
		{"tomorrow", "tomorrow", "2024-03-16", parseOK},
		{"explicit future", "2099-01-10", "2099-01-10", parseOK},
		{"explicit unpadded", "2099-1-5", "2099-01-05", parseOK},
		{"past date", "2024-03-14", "", parsePast},
		{"not a calendar date", "2024-13-01", "", parseInvalid},
		{"no date", "whenever works", "", parseMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := resolveAppointmentDate(tt.message, now)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAppointmentTime(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		status  parseStatus
	}{
		{"clock in hours", "10:00", "10:00", parseOK},
		{"clock zero pads hour", "9:30", "09:30", parseOK},
		{"clock before opening", "8:00", "", parseOutOfHours},
		{"clock after closing", "18:00", "", parseOutOfHours},
		{"pm conversion", "2 pm", "14:00", parseOK},
		{"noon stays twelve", "12 pm", "12:00", parseOK},
		{"midnight rejected", "12 am", "", parseOutOfHours},
		{"morning default", "morning", "10:00", parseOK},
		{"afternoon default", "in the afternoon", "14:00", parseOK},
		{"evening default", "evening", "16:00", parseOK},
		{"closing hour inclusive", "17:00", "17:00", parseOK},
		{"no time", "whenever", "", parseMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := resolveAppointmentTime(tt.message, 9, 17)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchGender(t *testing.T) {
	tests := []struct {
		message string
		want    string
		ok      bool
	}{
		{"male", "Male", true},
		{"i am a man", "Male", true},
		{"f", "Female", true},
		{"o", "Other", true},
		{"123", "", false},
	}
	for _, tt := range tests {
		got, ok := matchGender(tt.message)
		assert.Equal(t, tt.ok, ok, tt.message)
		assert.Equal(t, tt.want, got, tt.message)
	}
}

func TestMatchDepartment(t *testing.T) {
	tests := []struct {
		message string
		want    string
		ok      bool
	}{
		{"cardiology", "Cardiology", true},
		{"something for my heart", "Cardiology", true},
		{"skin issues", "Dermatology", true},
		{"my kids need a checkup", "Pediatrics", true},
		{"the gp please", "General Medicine", true},
		{"joints hurt", "Orthopedics", true},
		{"123", "", false},
	}
	for _, tt := range tests {
		got, ok := matchDepartment(tt.message)
		assert.Equal(t, tt.ok, ok, tt.message)
		assert.Equal(t, tt.want, got, tt.message)
	}
}

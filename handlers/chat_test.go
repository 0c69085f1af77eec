package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"darsehha/middleware"
	"darsehha/models"
	"darsehha/services/chatbot"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAppointmentService records submissions in memory and serves canned
// lookups.
type stubAppointmentService struct {
	submitted []models.AppointmentRequest
	latest    *models.Appointment
	byID      map[string]*models.Appointment
}

func (s *stubAppointmentService) Submit(_ context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	s.submitted = append(s.submitted, req)
	return &models.Appointment{
		ID:                 "appt-1",
		Status:             models.AppointmentStatusPending,
		AppointmentRequest: req,
	}, nil
}

func (s *stubAppointmentService) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	appt, ok := s.byID[id]
	if !ok {
		return nil, errors.New("appointment not found")
	}
	return appt, nil
}

func (s *stubAppointmentService) LatestByPatient(context.Context, string) (*models.Appointment, error) {
	return s.latest, nil
}

func (s *stubAppointmentService) ListByPatient(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) List(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Approve(context.Context, string, string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Cancel(context.Context, string, string) (*models.Appointment, error) {
	return nil, nil
}

func chatTestRouter(t *testing.T) (*gin.Engine, *stubAppointmentService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	chat := chatbot.NewChatService(9, 17)
	appts := &stubAppointmentService{}
	h := NewChatHandler(chat, appts, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/chat")
	api.Use(middleware.IdentityMiddleware())
	api.POST("", h.HandleChat)
	api.POST("/book-appointment", h.HandleBookAppointment)
	api.POST("/reset", h.HandleChatReset)
	return r, appts
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatRejectsEmptyMessage(t *testing.T) {
	r, _ := chatTestRouter(t)

	w := postJSON(r, "/api/chat", `{"message": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatRepliesToGreeting(t *testing.T) {
	r, _ := chatTestRouter(t)

	w := postJSON(r, "/api/chat", `{"message": "hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"stage":"initial"`)
	assert.Contains(t, w.Body.String(), `"completed":false`)
}

func TestHandleBookAppointmentWithoutConversation(t *testing.T) {
	r, appts := chatTestRouter(t)

	w := postJSON(r, "/api/chat/book-appointment", ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Empty(t, appts.submitted)
}

func TestHandleBookAppointmentSubmitsCompletedRecord(t *testing.T) {
	r, appts := chatTestRouter(t)

	conversation := []string{
		"i want to book an appointment",
		"John Smith",
		"555-123-4567",
		"john@example.com",
		"1990-05-14",
		"male",
		"cardiology",
		"2099-01-10",
		"10:00",
		"annual checkup",
	}
	for _, msg := range conversation {
		w := postJSON(r, "/api/chat", `{"message": "`+msg+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := postJSON(r, "/api/chat/book-appointment", ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	require.Len(t, appts.submitted, 1)
	rec := appts.submitted[0]
	assert.Equal(t, "John Smith", rec.FullName)
	assert.Equal(t, "Cardiology", rec.Department)
	assert.Equal(t, "2099-01-10", rec.AppointmentDate)
	// Anonymous sessions submit without a patient identity.
	assert.Empty(t, rec.PatientEmail)
}

func TestHandleChatResetClearsConversation(t *testing.T) {
	r, _ := chatTestRouter(t)

	postJSON(r, "/api/chat", `{"message": "book an appointment"}`)

	w := postJSON(r, "/api/chat/reset", ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = postJSON(r, "/api/chat", `{"message": "hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stage":"initial"`)
}

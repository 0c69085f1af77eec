package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"darsehha/middleware"
	"darsehha/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func appointmentTestRouter(t *testing.T, svc *stubAppointmentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandler(svc, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/appointments")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, "jane@example.com")
	})
	api.GET("/latest", h.LatestAppointment)
	api.GET("/:id", h.GetAppointment)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLatestAppointmentReturnsMostRecent(t *testing.T) {
	svc := &stubAppointmentService{
		latest: &models.Appointment{
			ID:     "appt-7",
			Status: models.AppointmentStatusPending,
			AppointmentRequest: models.AppointmentRequest{
				FullName:     "Jane Doe",
				Department:   "Dermatology",
				PatientEmail: "jane@example.com",
			},
		},
	}
	r := appointmentTestRouter(t, svc)

	w := getPath(r, "/api/appointments/latest")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "appt-7")
	assert.Contains(t, w.Body.String(), "Dermatology")
}

func TestLatestAppointmentWithoutHistory(t *testing.T) {
	r := appointmentTestRouter(t, &stubAppointmentService{})

	w := getPath(r, "/api/appointments/latest")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGetAppointmentByID(t *testing.T) {
	svc := &stubAppointmentService{
		byID: map[string]*models.Appointment{
			"appt-1": {
				ID:     "appt-1",
				Status: models.AppointmentStatusApproved,
				AppointmentRequest: models.AppointmentRequest{
					FullName:   "John Smith",
					Department: "Cardiology",
				},
			},
		},
	}
	r := appointmentTestRouter(t, svc)

	w := getPath(r, "/api/appointments/appt-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John Smith")
	assert.Contains(t, w.Body.String(), models.AppointmentStatusApproved)

	w = getPath(r, "/api/appointments/no-such-id")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"darsehha/config"
	"darsehha/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdentityMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CallerEmail(c)})
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentityDefaultsToAnonymous(t *testing.T) {
	r := identityRouter()

	w := doGet(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), AnonymousIdentity)
}

func TestIdentityResolvedFromToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := utils.GenerateToken("jane@example.com", "Jane Doe", false, time.Hour)
	require.NoError(t, err)

	r := identityRouter()
	w := doGet(r, "/whoami", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")
}

func TestInvalidTokenFallsThroughToAnonymous(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	r := identityRouter()
	w := doGet(r, "/whoami", "not-a-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), AnonymousIdentity)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	r := identityRouter()

	w := doGet(r, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAllowsAuthenticated(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := utils.GenerateToken("jane@example.com", "Jane Doe", false, time.Hour)
	require.NoError(t, err)

	r := identityRouter()
	w := doGet(r, "/private", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	patient, err := utils.GenerateToken("jane@example.com", "Jane Doe", false, time.Hour)
	require.NoError(t, err)
	admin, err := utils.GenerateToken("admin@darsehha.com", "Admin", true, time.Hour)
	require.NoError(t, err)

	r := identityRouter()
	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", patient).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/admin", admin).Code)
}

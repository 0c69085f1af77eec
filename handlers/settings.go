// File: handlers/settings.go
package handlers

import (
	"net/http"

	"darsehha/models"
	"darsehha/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the website settings endpoints.
type SettingsHandler struct {
	Service *admin.SettingsService
	Logger  *zap.Logger
}

func NewSettingsHandler(svc *admin.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Service: svc, Logger: logger}
}

// PublicSettings returns the settings used to render the public site. It
// never fails; storage problems fall back to defaults.
func (h *SettingsHandler) PublicSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.PublicSettings(c.Request.Context()))
}

// LoadSettings returns all settings for the admin dashboard.
func (h *SettingsHandler) LoadSettings(c *gin.Context) {
	settings, err := h.Service.Load(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to load settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error loading settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// SaveSettings stores one settings category from the admin dashboard.
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req models.SettingsCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}
	if err := h.Service.Save(c.Request.Context(), req); err != nil {
		h.Logger.Error("Failed to save settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings saved successfully!"})
}

// File: handlers/auth.go
package handlers

import (
	"net/http"
	"time"

	"darsehha/config"
	"darsehha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tokenDuration = 24 * time.Hour

// LoginRequest is the simple email+name login used by the clinic site.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// LoginHandler issues a signed identity token. There is no password; the
// clinic site identifies returning patients by email only, and admin rights
// come from the configured admin email list.
func LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please fill in all fields.", err.Error())
		return
	}

	isAdmin := config.IsAdminEmail(req.Email)
	token, err := utils.GenerateToken(req.Email, req.Name, isAdmin, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"email":    req.Email,
			"name":     req.Name,
			"is_admin": isAdmin,
		},
	})
}

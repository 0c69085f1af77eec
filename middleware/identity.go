package middleware

import (
	"net/http"
	"strings"

	"darsehha/utils"

	"github.com/gin-gonic/gin"
)

// AnonymousIdentity is the shared session bucket for unauthenticated
// callers. All anonymous chat traffic funnels through this one identifier.
const AnonymousIdentity = "anonymous"

// Context keys set by IdentityMiddleware.
const (
	ContextEmailKey = "identityEmail"
	ContextNameKey  = "identityName"
	ContextAdminKey = "identityAdmin"
)

// IdentityMiddleware resolves the caller's identity from an optional Bearer
// token. A valid token binds the conversation to the authenticated email; a
// missing or invalid token falls through to the anonymous bucket rather than
// rejecting the request, so the chatbot stays usable without an account.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextEmailKey, AnonymousIdentity)
		c.Set(ContextAdminKey, false)

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if email, name, isAdmin, err := utils.ExtractIdentityFromToken(tokenString); err == nil {
				c.Set(ContextEmailKey, email)
				c.Set(ContextNameKey, name)
				c.Set(ContextAdminKey, isAdmin)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests that resolved to the anonymous bucket.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerEmail(c) == AnonymousIdentity {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Please log in to access this resource.",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin claim.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, _ := c.Get(ContextAdminKey)
		if admin, ok := isAdmin.(bool); !ok || !admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required.",
			})
			return
		}
		c.Next()
	}
}

// CallerEmail returns the resolved identity email for the request, or the
// anonymous bucket if identity resolution did not run.
func CallerEmail(c *gin.Context) string {
	if email, ok := c.Get(ContextEmailKey); ok {
		if s, ok := email.(string); ok && s != "" {
			return s
		}
	}
	return AnonymousIdentity
}

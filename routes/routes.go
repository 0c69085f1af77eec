package routes

import (
	"net/http"
	"time"

	"darsehha/handlers"
	"darsehha/middleware"
	"darsehha/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterChatRoutes registers the chatbot conversation endpoints. Identity
// is optional: unauthenticated callers share the anonymous session bucket.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.IdentityMiddleware())
		api.POST("", hb.HandleChat)
		api.POST("/book-appointment", hb.HandleBookAppointment)
		api.POST("/reset", hb.HandleChatReset)
	}
}

// RegisterAppointmentRoutes registers appointment management endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.IdentityMiddleware())
		api.GET("/my", middleware.RequireAuth(), hb.MyAppointments)
		api.GET("/latest", middleware.RequireAuth(), hb.LatestAppointment)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.ListAppointments)
		admin.GET("/:id", hb.GetAppointment)
		admin.POST("/:id/approve", hb.ApproveAppointment)
		admin.POST("/:id/cancel", hb.CancelAppointment)
	}
}

// RegisterSettingsRoutes registers public and admin settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/settings", hb.PublicSettings)

	admin := r.Group("/api/admin/settings")
	{
		admin.Use(middleware.IdentityMiddleware(), middleware.RequireAdmin())
		admin.GET("/load", hb.LoadSettings)
		admin.POST("/save", hb.SaveSettings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm the DARSEHHA clinic assistant",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// SetupRouter assembles CORS and every route group onto the engine.
func SetupRouter(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
}

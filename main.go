// File: darsehha/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"darsehha/config"
	"darsehha/cron"
	"darsehha/database"
	appointmentRepo "darsehha/database/repository/appointment"
	settingsRepo "darsehha/database/repository/settings"
	"darsehha/handlers"
	"darsehha/middleware"
	"darsehha/routes"
	"darsehha/services/admin"
	"darsehha/services/appointment"
	"darsehha/services/chatbot"
	"darsehha/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	setRepo := settingsRepo.NewMongoSettingsRepo()

	// reminder queue client.
	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()

	// services.
	chatService := chatbot.NewChatService(
		config.AppConfig.BusinessOpenHour,
		config.AppConfig.BusinessCloseHour,
	)
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:              apptRepo,
		Cache:             utils.GetCacheClient(),
		Queue:             reminderQueue,
		ReminderLeadHours: config.AppConfig.ReminderLeadHours,
	}
	settingsService := &admin.SettingsService{
		Repo:  setRepo,
		Cache: utils.GetCacheClient(),
	}

	// handlers.
	chatHandler := handlers.NewChatHandler(chatService, appointmentService, logger)
	apptHandler := handlers.NewAppointmentHandler(appointmentService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		LoginHandler: handlers.LoginHandler,

		// Chat endpoints.
		HandleChat:            chatHandler.HandleChat,
		HandleBookAppointment: chatHandler.HandleBookAppointment,
		HandleChatReset:       chatHandler.HandleChatReset,

		// Appointment endpoints.
		ListAppointments:   apptHandler.ListAppointments,
		GetAppointment:     apptHandler.GetAppointment,
		MyAppointments:     apptHandler.MyAppointments,
		LatestAppointment:  apptHandler.LatestAppointment,
		ApproveAppointment: apptHandler.ApproveAppointment,
		CancelAppointment:  apptHandler.CancelAppointment,

		// Settings endpoints.
		PublicSettings: settingsHandler.PublicSettings,
		LoadSettings:   settingsHandler.LoadSettings,
		SaveSettings:   settingsHandler.SaveSettings,
	}

	// Register routes with the assembled handler bundle.
	routes.SetupRouter(router, handlerBundle)

	// Background work: reminder worker, retention sweep, health monitor.
	cron.InitReminderWorker()
	cron.StartRetentionSweep(apptRepo, settingsService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

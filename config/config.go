package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Clinic configuration.
	AdminEmails       string `mapstructure:"ADMIN_EMAILS"`
	BusinessOpenHour  int    `mapstructure:"BUSINESS_OPEN_HOUR"`
	BusinessCloseHour int    `mapstructure:"BUSINESS_CLOSE_HOUR"`
	ReminderLeadHours int    `mapstructure:"REMINDER_LEAD_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("JWT_SECRET", "medical-clinic-secret-key-2024")
	viper.SetDefault("ADMIN_EMAILS", "admin@darsehha.com")
	viper.SetDefault("BUSINESS_OPEN_HOUR", 9)
	viper.SetDefault("BUSINESS_CLOSE_HOUR", 17)
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// AdminEmailList returns the configured admin emails as a slice.
func AdminEmailList() []string {
	parts := strings.Split(AppConfig.AdminEmails, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.TrimSpace(p); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// IsAdminEmail reports whether the given email belongs to a clinic admin.
func IsAdminEmail(email string) bool {
	for _, e := range AdminEmailList() {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

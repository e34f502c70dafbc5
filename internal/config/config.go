package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Retention RetentionConfig
	Auth      AuthConfig
}

type AppConfig struct {
	Host               string
	Port               string
	Environment        string
	LogLevel           string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
	Name       string
}

type RetentionConfig struct {
	CutoffDays    int
	SweepSchedule string
}

type AuthConfig struct {
	AdminUserId     string
	BootstrapAPIKey string
	RateLimitPerMin int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Host:               getEnv("APP_HOST", "0.0.0.0"),
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogLevel:           getEnv("LOG_LEVEL", "info"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "data_server.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Name:       getEnv("DB_NAME", "workflow_automation"),
		},
		Retention: RetentionConfig{
			CutoffDays:    getEnvAsInt("DATA_CUTOFF_DAYS", 30),
			SweepSchedule: getEnv("SWEEP_CRON_SCHEDULE", "0 0 2 * * *"), // daily at 02:00
		},
		Auth: AuthConfig{
			AdminUserId:     getEnv("ADMIN_USER_ID", "admin"),
			BootstrapAPIKey: getEnv("BOOTSTRAP_API_KEY", ""),
			RateLimitPerMin: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

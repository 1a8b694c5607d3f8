package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Env                string
	DBPath             string
	LogLevel           string
	CORSOrigins        string
	CheckpointInterval time.Duration
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:               GetEnv("PORT", "3000"),
		Env:                GetEnv("ENV", "development"),
		DBPath:             GetEnv("DB_PATH", "./data/notes.db"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:        GetEnv("CORS_ORIGINS", "*"),
		CheckpointInterval: GetDuration("CHECKPOINT_INTERVAL", 5*time.Minute),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDuration reads a Go duration ("30s", "5m"). Unparseable values fall back to the default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("invalid %s %q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return d
}

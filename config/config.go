package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds everything read from the environment.
type Config struct {
	Port           string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	SessionDataURL string
	CookieSecure   bool
}

// Load reads .env (if present) and collects the environment into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}

	return Config{
		Port:           getenv("PORT", "8080"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME", "metodo"),
		DBPort:         getenv("DB_PORT", "5432"),
		SessionDataURL: getenv("SESSION_DATA_URL", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),
		CookieSecure:   os.Getenv("COOKIE_SECURE") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	AIServiceURL string
	TemplateDir  string
}

// Load reads the environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AIServiceURL: getEnv("AI_SERVICE_URL", "http://ai-service:8000"),
		TemplateDir:  getEnv("TEMPLATE_DIR", "templates"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// CORS: when empty, the request's own Origin is echoed back
	AllowedOrigin string

	// Static front end
	StaticDir string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "3001"),
		Env:           getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:  mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", ""),
		StaticDir:     getEnvOrDefault("STATIC_DIR", "./web"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// File: internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	// Database. Driver is "postgres" in production; "sqlite" is the
	// zero-setup fallback for local development.
	DBDriver   string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	JWTSecretKey string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	AIModel       string

	CORSAllowedOrigin string
}

// Load reads configuration from environment variables or a .env file.
func Load() (*Config, error) {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8000"),
		Environment: env,

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvAsInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "chat_app"),
		SQLitePath: getEnv("SQLITE_PATH", "chat_app.db"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		AIModel:       getEnv("AI_MODEL", "gpt-3.5-turbo"),

		// The React frontend origin. Kept narrow on purpose; use "*" only
		// for local experiments.
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on missing required values instead of letting the
// server start with an empty signing secret or broken database credentials.
func (c *Config) Validate() error {
	missing := []string{}
	if c.JWTSecretKey == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.DBDriver == "postgres" {
		if c.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
		if c.DBPassword == "" {
			missing = append(missing, "DB_PASSWORD")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver)
	}
	return nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}

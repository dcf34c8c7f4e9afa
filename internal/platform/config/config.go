package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret string

	// External document system serving source documents for P&L reports.
	DocumentsBaseURL string
	DocumentsAPIKey  string
	DocumentsTimeout time.Duration

	// Requests per minute per client IP.
	RateLimitPerMinute int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("DOCUMENTS_BASE_URL", "")
	viper.SetDefault("DOCUMENTS_API_KEY", "")
	viper.SetDefault("DOCUMENTS_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	cfg.DocumentsBaseURL = viper.GetString("DOCUMENTS_BASE_URL")
	if cfg.DocumentsBaseURL == "" {
		log.Println("Warning: DOCUMENTS_BASE_URL not set. P&L reports will be empty.")
	}
	cfg.DocumentsAPIKey = viper.GetString("DOCUMENTS_API_KEY")

	timeoutStr := viper.GetString("DOCUMENTS_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for DOCUMENTS_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.DocumentsTimeout = timeout

	cfg.RateLimitPerMinute = viper.GetInt64("RATE_LIMIT_PER_MINUTE")

	return cfg, nil
}

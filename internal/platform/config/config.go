package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// JWTSecret verifies bearer tokens from the external identity provider.
	JWTSecret string

	// Finance backend (the source of truth for documents).
	FinanceAPIBaseURL string
	FinanceAPITimeout time.Duration

	// AdminRole is the role name granted the administrative override in the
	// authorization resolver.
	AdminRole string

	// TransitionRateLimit is a ulule/limiter formatted rate (e.g. "30-M")
	// applied to the status submission route.
	TransitionRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("FINANCE_API_BASE_URL", "")
	viper.SetDefault("FINANCE_API_TIMEOUT", "30s")
	viper.SetDefault("ADMIN_ROLE", "ADMINISTRATOR")
	viper.SetDefault("TRANSITION_RATE_LIMIT", "30-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.FinanceAPIBaseURL = viper.GetString("FINANCE_API_BASE_URL")
	if cfg.FinanceAPIBaseURL == "" {
		log.Println("Warning: FINANCE_API_BASE_URL environment variable not set.")
	}

	timeoutStr := viper.GetString("FINANCE_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for FINANCE_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.FinanceAPITimeout = timeout

	cfg.AdminRole = viper.GetString("ADMIN_ROLE")
	cfg.TransitionRateLimit = viper.GetString("TRANSITION_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // debug, info, warn, error

	// Server
	ServerAddr   string `validate:"required"`
	CORSOrigins  string // Comma-separated allowed origins
	RateLimitMax int    `validate:"gte=0"` // Requests per minute per IP, 0 disables

	// Storage
	DatabaseURL string `validate:"required"`
	RedisURL    string `validate:"omitempty,url"` // Optional; backs the rate limiter when set

	// WHOIS lookups
	WhoisProvider string        `validate:"oneof=xmlapi raw"`
	WhoisAPIURL   string        `validate:"omitempty,url"`
	WhoisAPIKey   string
	WhoisUsername string
	WhoisPassword string
	WhoisTimeout  time.Duration `validate:"gt=0"`

	// Search behaviour
	SuffixSet        string        `validate:"required"` // Named suffix set, see suffixes.go
	RetentionDays    int           `validate:"gte=1"`
	EvictionInterval time.Duration `validate:"gte=0"` // 0 disables the background eviction job

	// Optional YAML file with extra suffix sets
	ConfigFile string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 60),

		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/domainsearch?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),

		WhoisProvider: getEnv("WHOIS_PROVIDER", "xmlapi"),
		WhoisAPIURL:   getEnv("WHOIS_API_URL", "http://www.whoisxmlapi.com"),
		WhoisAPIKey:   getEnv("WHOIS_API_KEY", ""),
		WhoisUsername: getEnv("WHOIS_USERNAME", ""),
		WhoisPassword: getEnv("WHOIS_PASSWORD", ""),
		WhoisTimeout:  getEnvDuration("WHOIS_TIMEOUT", 10*time.Second),

		SuffixSet:        getEnv("SUFFIX_SET", DefaultSuffixSet),
		RetentionDays:    getEnvInt("RETENTION_DAYS", 7),
		EvictionInterval: getEnvDuration("EVICTION_INTERVAL", time.Hour),

		ConfigFile: getEnv("CONFIG_FILE", "config.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// Validate checks the loaded values and reports every invalid field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

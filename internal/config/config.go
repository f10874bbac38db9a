package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the gallery service.
type Config struct {
	Env  string `validate:"oneof=development production test"`
	Port string `validate:"required,numeric"`

	AdminUsername     string `validate:"required"`
	AdminPassword     string `validate:"required_without=AdminPasswordHash"`
	AdminPasswordHash string

	MediaMaxBytes      int64         `validate:"gt=0"`
	MediaPendingTTL    time.Duration `validate:"gt=0"`
	MediaSweepSchedule string        `validate:"required"`

	SeedSampleEntries bool

	RedisHost     string
	RedisPort     string `validate:"required_with=RedisHost"`
	RedisPassword string
	RedisDB       int    `validate:"gte=0"`
	NotifyChannel string `validate:"required"`
}

// Load reads the configuration from the environment, loading a .env file
// first when one is present.
func Load() (*Config, error) {
	// A missing .env file is fine, the process environment is used instead
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	maxBytes, err := strconv.ParseInt(getEnvOrDefault("MEDIA_MAX_BYTES", "26214400"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MEDIA_MAX_BYTES value: %w", err)
	}

	ttl, err := time.ParseDuration(getEnvOrDefault("MEDIA_PENDING_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEDIA_PENDING_TTL value: %w", err)
	}

	seed, err := strconv.ParseBool(getEnvOrDefault("SEED_SAMPLE_ENTRIES", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_SAMPLE_ENTRIES value: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	cfg := &Config{
		Env:                getEnvOrDefault("APP_ENV", "development"),
		Port:               getEnvOrDefault("PORT", "9091"),
		AdminUsername:      getEnvOrDefault("ADMIN_USERNAME", "mohan"),
		AdminPassword:      getEnvOrDefault("ADMIN_PASSWORD", "mohan"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		MediaMaxBytes:      maxBytes,
		MediaPendingTTL:    ttl,
		MediaSweepSchedule: getEnvOrDefault("MEDIA_SWEEP_SCHEDULE", "@every 5m"),
		SeedSampleEntries:  seed,
		RedisHost:          os.Getenv("REDIS_HOST"),
		RedisPort:          getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"), // No default for password
		RedisDB:            redisDB,
		NotifyChannel:      getEnvOrDefault("NOTIFY_CHANNEL", "gallery:events"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// RedisEnabled reports whether event publishing to redis is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

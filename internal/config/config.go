package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Generator GeneratorConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string
	Version  string
	Env      string
	LogLevel string
}

// GeneratorConfig holds the default request and generator tuning
type GeneratorConfig struct {
	Count       int
	AgeMin      float64
	AgeMax      float64
	Seed        uint64
	MaxAttempts int
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	config.App = AppConfig{
		Name:     getEnv("APP_NAME", "hris-workforce-stats"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Generator configuration
	count, err := strconv.Atoi(getEnv("EMPLOYEE_COUNT", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid EMPLOYEE_COUNT: %w", err)
	}

	ageMin, err := strconv.ParseFloat(getEnv("AGE_MIN", "18"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid AGE_MIN: %w", err)
	}

	ageMax, err := strconv.ParseFloat(getEnv("AGE_MAX", "65"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid AGE_MAX: %w", err)
	}

	seed, err := strconv.ParseUint(getEnv("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
	}

	maxAttempts, err := strconv.Atoi(getEnv("BIRTHDATE_MAX_ATTEMPTS", "100000"))
	if err != nil {
		return nil, fmt.Errorf("invalid BIRTHDATE_MAX_ATTEMPTS: %w", err)
	}

	config.Generator = GeneratorConfig{
		Count:       count,
		AgeMin:      ageMin,
		AgeMax:      ageMax,
		Seed:        seed,
		MaxAttempts: maxAttempts,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if validator.IsEmpty(c.App.Name) {
		return fmt.Errorf("APP_NAME is required")
	}
	if !validator.IsInSlice(c.App.LogLevel, logLevels) {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	if c.Generator.MaxAttempts <= 0 {
		return fmt.Errorf("BIRTHDATE_MAX_ATTEMPTS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

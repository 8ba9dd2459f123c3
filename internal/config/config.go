package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	TrackingInterval   time.Duration
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
	LogLevel           string
	Env                string
	TracesStdout       bool
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	trackingInterval, err := getDuration("TRACKING_INTERVAL", 15*time.Second)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	env := getEnv("APP_ENV", "production")
	tracesStdout, err := getBool("TRACES_STDOUT", env == "development")
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		TrackingInterval:   trackingInterval,
		RequestTimeout:     requestTimeout,
		ShutdownTimeout:    shutdownTimeout,
		MaxRequestBodySize: 1 << 20, // 1MB
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Env:                env,
		TracesStdout:       tracesStdout,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive, got %s", key, raw)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

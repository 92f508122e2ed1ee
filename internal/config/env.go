// Package config reads typed settings from the environment. Each main loads
// an optional .env file with godotenv before any of these run.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env from the working directory if present. A missing file
// is expected outside local development and only logged.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not loaded", "err", err)
	}
}

// String returns the value of key, or defaultValue when unset or empty.
func String(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// Int returns key parsed as an integer, or defaultValue when unset or empty.
func Int(key string, defaultValue int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

// Int64 returns key parsed as a 64-bit integer, or defaultValue when unset or empty.
func Int64(key string, defaultValue int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

// LogLevel returns key parsed as a log level, or defaultLevel when unset or empty.
func LogLevel(key string, defaultLevel log.Level) (log.Level, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultLevel, nil
	}
	level, err := log.ParseLevel(value)
	if err != nil {
		return defaultLevel, fmt.Errorf("environment variable %s: %w", key, err)
	}
	return level, nil
}

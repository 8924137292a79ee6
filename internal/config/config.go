// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// OCRConfig holds text-recognition settings.
type OCRConfig struct {
	Languages []string
}

// UploadConfig holds document upload limits.
type UploadConfig struct {
	MaxSizeBytes int64
}

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OCR      OCRConfig
	Upload   UploadConfig
	LogLevel string
}

// Load reads configuration from a .env file (if present) and the process
// environment, applying defaults for anything unset.
func Load() (*Config, error) {
	// A missing .env is fine; values may come from the environment directly.
	_ = godotenv.Load()

	maxMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE_MB", "50"))
	if err != nil || maxMB <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %q", os.Getenv("MAX_UPLOAD_SIZE_MB"))
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "leadscan"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		OCR: OCRConfig{
			Languages: splitList(getEnv("OCR_LANGUAGES", "eng")),
		},
		Upload: UploadConfig{
			MaxSizeBytes: int64(maxMB) << 20,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// getEnv returns the value of key, or fallback when unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

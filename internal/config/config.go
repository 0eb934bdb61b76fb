package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Data      DataConfig
	Directory DirectoryConfig
	CORS      CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port      int
	Env       string
	LogLevel  string
	StaticDir string
}

// DataConfig points at the files the reports are computed from.
// CSVFile and UsersXMLFile are relative to Dir.
type DataConfig struct {
	Dir          string
	CSVFile      string
	UsersXMLFile string
}

// DirectoryConfig controls the periodic download of the users XML
type DirectoryConfig struct {
	URL             string
	RefreshInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:      appPort,
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		StaticDir: getEnv("STATIC_DIR", "static"),
	}

	// Data files
	config.Data = DataConfig{
		Dir:          getEnv("DATA_DIR", filepath.Join("runtime", "data")),
		CSVFile:      getEnv("DATA_CSV", "sample_data.csv"),
		UsersXMLFile: getEnv("USERS_XML", "users.xml"),
	}

	// Users directory refresh
	refreshInterval, err := time.ParseDuration(getEnv("USERS_XML_REFRESH_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid USERS_XML_REFRESH_INTERVAL: %w", err)
	}

	config.Directory = DirectoryConfig{
		URL:             getEnv("USERS_XML_URL", ""),
		RefreshInterval: refreshInterval,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs validator.ValidationErrors

	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, validator.ValidationError{
			Field:   "APP_PORT",
			Message: "must be between 1 and 65535",
		})
	}
	if validator.IsEmpty(c.Data.Dir) {
		errs = append(errs, validator.ValidationError{Field: "DATA_DIR", Message: "is required"})
	}
	if validator.IsEmpty(c.Data.CSVFile) {
		errs = append(errs, validator.ValidationError{Field: "DATA_CSV", Message: "is required"})
	}
	if validator.IsEmpty(c.Data.UsersXMLFile) {
		errs = append(errs, validator.ValidationError{Field: "USERS_XML", Message: "is required"})
	}
	if c.Directory.URL != "" && c.Directory.RefreshInterval <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "USERS_XML_REFRESH_INTERVAL",
			Message: "must be positive when USERS_XML_URL is set",
		})
	}
	if !validator.IsInSlice(c.App.LogLevel, []string{"debug", "info", "warn", "error"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "LOG_LEVEL",
			Message: "must be one of debug, info, warn, error",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.App.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

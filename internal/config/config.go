package config

import (
	"os"
	"path/filepath"
	"time"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// MediaConfig holds artifact storage settings.
// Backend is "disk" or "minio".
type MediaConfig struct {
	Backend     string
	Root        string
	MinIOURL    string
	MinIOKey    string
	MinIOSecret string
	MinIOBucket string
	MinIOSSL    bool
}

// DBConfig holds exchange history store settings.
// Backend is "sqlite" or "postgres".
type DBConfig struct {
	Backend    string
	SQLitePath string
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGName     string
}

// ModelConfig holds Gemini model selection
type ModelConfig struct {
	LiveModel string
	ChatModel string
	TTSModel  string
	Voice     string
}

// Config aggregates all runtime settings
type Config struct {
	Server ServerConfig
	Media  MediaConfig
	DB     DBConfig
	Models ModelConfig
}

// FromEnv builds a Config from environment variables with defaults
func FromEnv() *Config {
	mediaRoot := getEnvOrDefault("MEDIA_ROOT", "media")

	return &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvOrDefault("SERVER_PORT", "8000"),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 60*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 120*time.Second),
			IdleTimeout:  getDurationOrDefault("SERVER_IDLE_TIMEOUT", 90*time.Second),
		},
		Media: MediaConfig{
			Backend:     getEnvOrDefault("MEDIA_BACKEND", "disk"),
			Root:        mediaRoot,
			MinIOURL:    getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
			MinIOKey:    os.Getenv("MINIO_ACCESS_KEY"),
			MinIOSecret: os.Getenv("MINIO_SECRET_KEY"),
			MinIOBucket: getEnvOrDefault("MINIO_BUCKET", "cinevoice"),
			MinIOSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
		DB: DBConfig{
			Backend:    getEnvOrDefault("DB_BACKEND", "sqlite"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", filepath.Join("data", "exchanges.db")),
			PGHost:     getEnvOrDefault("DB_HOST", "localhost"),
			PGPort:     getEnvOrDefault("DB_PORT", "5432"),
			PGUser:     getEnvOrDefault("DB_USER", "postgres"),
			PGPassword: os.Getenv("DB_PASSWORD"),
			PGName:     getEnvOrDefault("DB_NAME", "cinevoice"),
		},
		Models: ModelConfig{
			LiveModel: getEnvOrDefault("GEMINI_LIVE_MODEL", "gemini-2.0-flash-live-001"),
			ChatModel: getEnvOrDefault("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
			TTSModel:  getEnvOrDefault("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
			Voice:     getEnvOrDefault("GEMINI_VOICE", "Kore"),
		},
	}
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.ReadTimeout, "read"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.WriteTimeout, "write"); err != nil {
		return err
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

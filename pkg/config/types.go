package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Transcription TranscriptionConfig `mapstructure:"transcription"`
	Ingest        IngestConfig        `mapstructure:"ingest"`
	RateLimiting  RateLimitConfig     `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig contains durable payload storage settings
type StorageConfig struct {
	UploadDir string `mapstructure:"upload_dir"`
}

// TranscriptionConfig contains speech-to-text engine settings
type TranscriptionConfig struct {
	Provider    string        `mapstructure:"provider"`
	Language    string        `mapstructure:"language"`
	Timeout     time.Duration `mapstructure:"timeout"`
	ModelPath   string        `mapstructure:"model_path"`
	WhisperPath string        `mapstructure:"whisper_path"`
}

// IngestConfig contains ingestion pipeline settings
type IngestConfig struct {
	IdentityAttempts int `mapstructure:"identity_attempts"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	TranscribeRPS   int `mapstructure:"transcribe_rps"`
	TranscribeBurst int `mapstructure:"transcribe_burst"`
	QueryRPS        int `mapstructure:"query_rps"`
	QueryBurst      int `mapstructure:"query_burst"`
}

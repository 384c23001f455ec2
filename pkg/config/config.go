package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("TRANSCRIBER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// IsInitialized reports whether configuration values are available, either
// through Init or set directly on viper (tests do the latter)
func IsInitialized() bool {
	return viper.IsSet("server.port")
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 returns an int64 config value
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		fmt.Println("Warning: No database path configured")
	}

	provider := viper.GetString("transcription.provider")
	switch provider {
	case "openai", "whisper_cpp":
	default:
		return fmt.Errorf("unknown transcription provider: %s", provider)
	}

	// Auto-correct invalid identity retry budget
	if viper.GetInt("ingest.identity_attempts") <= 0 {
		viper.Set("ingest.identity_attempts", 3)
	}

	// Auto-correct invalid upload size limit
	if viper.GetInt64("server.max_upload_bytes") <= 0 {
		viper.Set("server.max_upload_bytes", int64(100*1024*1024))
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_upload_bytes", int64(100*1024*1024))

	// Database defaults
	viper.SetDefault("database.path", "./data/transcriber.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.upload_dir", "./data/uploads")

	// Transcription engine defaults
	viper.SetDefault("transcription.provider", "openai")
	viper.SetDefault("transcription.language", "en")
	viper.SetDefault("transcription.timeout", 5*time.Minute)
	viper.SetDefault("transcription.model_path", "./models/ggml-base.en.bin")
	viper.SetDefault("transcription.whisper_path", "whisper-cli")

	// Ingestion defaults
	viper.SetDefault("ingest.identity_attempts", 3)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.transcribe_rps", 2)
	viper.SetDefault("rate_limiting.transcribe_burst", 5)
	viper.SetDefault("rate_limiting.query_rps", 10)
	viper.SetDefault("rate_limiting.query_burst", 20)
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Ingest.IdentityAttempts <= 0 {
		c.Ingest.IdentityAttempts = 3
	}

	if c.Server.MaxUploadBytes <= 0 {
		c.Server.MaxUploadBytes = 100 * 1024 * 1024
	}

	return nil
}

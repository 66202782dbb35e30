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
		viper.SetEnvPrefix("LEXIVOX")
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
			// Config file doesn't exist, which is fine - we'll use defaults
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
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

// GetFloat64 returns a float64 config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
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

	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct nonsensical quality thresholds rather than failing:
	// the gate must stay conservative but operable
	if viper.GetFloat64("quality.minimum_peak_amplitude") < 0 {
		viper.Set("quality.minimum_peak_amplitude", 0.02)
	}
	if viper.GetInt64("quality.minimum_file_size_bytes") < 0 {
		viper.Set("quality.minimum_file_size_bytes", 5000)
	}

	pass := viper.GetFloat64("scoring.pass_threshold")
	if pass <= 0 || pass > 1 {
		return fmt.Errorf("invalid scoring pass threshold: %f", pass)
	}
	ceiling := viper.GetFloat64("scoring.language_mismatch_ceiling")
	if ceiling < 0 || ceiling >= pass {
		return fmt.Errorf("language mismatch ceiling %f must be non-negative and below the pass threshold %f", ceiling, pass)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	sttKey := viper.GetString("stt.api_key")
	for _, placeholder := range placeholders {
		if sttKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid STT API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: STT API key is using a placeholder value")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Scoring.PassThreshold <= 0 || c.Scoring.PassThreshold > 1 {
		return fmt.Errorf("invalid scoring pass threshold: %f", c.Scoring.PassThreshold)
	}

	if c.Scoring.LanguageMismatchCeiling >= c.Scoring.PassThreshold {
		return fmt.Errorf("language mismatch ceiling must stay below the pass threshold")
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
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_upload_bytes", 10485760)

	// Database defaults
	viper.SetDefault("database.path", "./data/speech.db")
	viper.SetDefault("database.enable_wal", true)
	viper.SetDefault("database.verbose", false)

	// Quality gate defaults. Empirically tuned; the right values are
	// deployment- and codec-dependent, so override per environment
	// rather than editing these.
	viper.SetDefault("quality.minimum_duration", 500*time.Millisecond)
	viper.SetDefault("quality.minimum_file_size_bytes", 5000)
	viper.SetDefault("quality.minimum_peak_amplitude", 0.02)
	viper.SetDefault("quality.minimum_average_amplitude", 0.02)

	// STT defaults. The timeout is deliberately longer than ordinary
	// request timeouts since audio payloads are larger.
	viper.SetDefault("stt.api_url", "https://api.openai.com/v1/audio/transcriptions")
	viper.SetDefault("stt.model", "whisper-1")
	viper.SetDefault("stt.temperature", 0)
	viper.SetDefault("stt.timeout", 2*time.Minute)
	viper.SetDefault("stt.max_file_size", 26214400)

	// Scoring defaults
	viper.SetDefault("scoring.pass_threshold", 0.7)
	viper.SetDefault("scoring.language_mismatch_ceiling", 0.3)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.enable_recovery", true)
}

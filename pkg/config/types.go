package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Quality      QualityConfig   `mapstructure:"quality"`
	STT          STTConfig       `mapstructure:"stt"`
	Scoring      ScoringConfig   `mapstructure:"scoring"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
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
	Path      string `mapstructure:"path"`
	EnableWAL bool   `mapstructure:"enable_wal"`
	Verbose   bool   `mapstructure:"verbose"`
}

// QualityConfig contains the audio admission thresholds. The same class
// of thresholds is applied twice: on-device by the capture SDK and again
// by the ingest gate, which never trusts the client's own check.
type QualityConfig struct {
	MinimumDuration         time.Duration `mapstructure:"minimum_duration"`
	MinimumFileSizeBytes    int64         `mapstructure:"minimum_file_size_bytes"`
	MinimumPeakAmplitude    float64       `mapstructure:"minimum_peak_amplitude"`
	MinimumAverageAmplitude float64       `mapstructure:"minimum_average_amplitude"`
}

// STTConfig contains speech-to-text backend settings
type STTConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	APIURL      string        `mapstructure:"api_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxFileSize int64         `mapstructure:"max_file_size"`
}

// ScoringConfig contains pronunciation scoring settings
type ScoringConfig struct {
	PassThreshold           float64 `mapstructure:"pass_threshold"`
	LanguageMismatchCeiling float64 `mapstructure:"language_mismatch_ceiling"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS     bool `mapstructure:"enable_cors"`
	EnableRecovery bool `mapstructure:"enable_recovery"`
}

package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Pipeline PipelineConfig
	Detector DetectorConfig
	Locks    LockConfig
	Blobs    BlobConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// BlobConfig holds document blob storage configuration
type BlobConfig struct {
	Root string
}

// PipelineConfig holds worker-pool and queue configuration
type PipelineConfig struct {
	Workers           int
	QueueSize         int
	ProcessTimeout    time.Duration
	VisibilityTimeout time.Duration
	MaxAttempts       int
	BackoffBase       time.Duration
}

// DetectorConfig holds anomaly-detector defaults
type DetectorConfig struct {
	Window        int
	MinSamples    int
	ZThreshold    float64
	CUSUMDrift    float64
	CUSUMDecision float64
}

// LockConfig holds workflow-lock governance settings
type LockConfig struct {
	TTLDays       int
	SweepInterval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		Pipeline: PipelineConfig{
			Workers:           getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:         getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout:    getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 3*time.Minute),
			VisibilityTimeout: getEnvAsDuration("PIPELINE_VISIBILITY_TIMEOUT", 5*time.Minute),
			MaxAttempts:       getEnvAsInt("PIPELINE_MAX_ATTEMPTS", 3),
			BackoffBase:       getEnvAsDuration("PIPELINE_BACKOFF_BASE", 2*time.Second),
		},
		Detector: DetectorConfig{
			Window:        getEnvAsInt("DETECTOR_WINDOW", 12),
			MinSamples:    getEnvAsInt("DETECTOR_MIN_SAMPLES", 2),
			ZThreshold:    getEnvAsFloat64("DETECTOR_Z_THRESHOLD", 2.0),
			CUSUMDrift:    getEnvAsFloat64("DETECTOR_CUSUM_DRIFT", 0.5),
			CUSUMDecision: getEnvAsFloat64("DETECTOR_CUSUM_DECISION", 5.0),
		},
		Locks: LockConfig{
			TTLDays:       getEnvAsInt("LOCK_TTL_DAYS", 90),
			SweepInterval: getEnvAsDuration("LOCK_SWEEP_INTERVAL", time.Hour),
		},
		Blobs: BlobConfig{
			Root: getEnv("BLOB_ROOT", "./blobs"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_WORKERS must be positive", ErrInvalidInput)
	}
	if c.Pipeline.MaxAttempts <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_MAX_ATTEMPTS must be positive", ErrInvalidInput)
	}
	if c.Detector.Window < 2 {
		return NewAppError("CONFIG_ERROR", "DETECTOR_WINDOW must be at least 2", ErrInvalidInput)
	}
	if c.Locks.TTLDays <= 0 {
		return NewAppError("CONFIG_ERROR", "LOCK_TTL_DAYS must be positive", ErrInvalidInput)
	}
	return nil
}

package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Storage     StorageConfig     `mapstructure:"storage" validate:"required"`
	Generator   GeneratorConfig   `mapstructure:"generator" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// StorageConfig holds event log storage configuration.
type StorageConfig struct {
	Path           string `mapstructure:"path" validate:"required"`
	RetentionHours int    `mapstructure:"retention_hours" validate:"required,min=1"`
}

// GeneratorConfig holds synthetic event generator configuration.
type GeneratorConfig struct {
	Enabled            bool    `mapstructure:"enabled"`
	Rate               int     `mapstructure:"rate" validate:"required,min=1"` // events per second
	Seed               int64   `mapstructure:"seed"`
	ErrorRate          float64 `mapstructure:"error_rate" validate:"min=0,max=1"`
	BufferUnderrunRate float64 `mapstructure:"buffer_underrun_rate" validate:"min=0,max=1"`
	PauseRate          float64 `mapstructure:"pause_rate" validate:"min=0,max=1"`
	BatchSize          int     `mapstructure:"batch_size" validate:"required,min=1"`
	BufferSize         int     `mapstructure:"buffer_size" validate:"required,min=1"`
	FlushIntervalMs    int     `mapstructure:"flush_interval_ms" validate:"required,min=1"`
}

// IngestionConfig holds ingestion pipeline configuration.
type IngestionConfig struct {
	ClockSkewToleranceSeconds int `mapstructure:"clock_skew_tolerance_seconds" validate:"required,min=1"`
	DedupeWindowSeconds       int `mapstructure:"dedupe_window_seconds" validate:"required,min=1"`
	MaxBatchSize              int `mapstructure:"max_batch_size" validate:"required,min=1"`
	AppendRetries             int `mapstructure:"append_retries" validate:"required,min=1"`
	RetryBackoffMs            int `mapstructure:"retry_backoff_ms" validate:"required,min=1"`
}

// AggregationConfig holds windowed aggregation configuration.
type AggregationConfig struct {
	BucketGranularitySeconds int      `mapstructure:"bucket_granularity_seconds" validate:"required,min=1"`
	Windows                  []string `mapstructure:"windows" validate:"required,min=1,dive,oneof=minute five_minute fifteen_minute hour six_hour"`
}

package configs

import (
	"fmt"
	"strings"
	"time"

	"streaming-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

var windowDurations = map[string]time.Duration{
	"minute":         time.Minute,
	"five_minute":    5 * time.Minute,
	"fifteen_minute": 15 * time.Minute,
	"hour":           time.Hour,
	"six_hour":       6 * time.Hour,
}

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	if err := validateCrossFields(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validateCrossFields checks constraints that span multiple fields.
func validateCrossFields(cfg *Config) error {
	granularity := time.Duration(cfg.Aggregation.BucketGranularitySeconds) * time.Second

	smallest := time.Duration(0)
	largest := time.Duration(0)
	for _, name := range cfg.Aggregation.Windows {
		d := windowDurations[name]
		if smallest == 0 || d < smallest {
			smallest = d
		}
		if d > largest {
			largest = d
		}
	}

	if smallest%granularity != 0 {
		return fmt.Errorf("aggregation.bucket_granularity_seconds (%d) must divide the smallest window (%s)",
			cfg.Aggregation.BucketGranularitySeconds, smallest)
	}

	retention := time.Duration(cfg.Storage.RetentionHours) * time.Hour
	if retention < largest {
		return fmt.Errorf("storage.retention_hours (%d) must cover the largest window (%s)",
			cfg.Storage.RetentionHours, largest)
	}

	rateSum := cfg.Generator.ErrorRate + cfg.Generator.BufferUnderrunRate + cfg.Generator.PauseRate
	if rateSum > 1 {
		return fmt.Errorf("generator.error_rate + generator.buffer_underrun_rate + generator.pause_rate (%.2f) must not exceed 1", rateSum)
	}

	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}

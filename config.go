// FILE: lixenwraith/dlog/config.go
package dlog

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all writer configuration values
type Config struct {
	// Target selection
	FilePath  string `toml:"file_path"` // Fixed target path; empty enables auto-naming by date
	Directory string `toml:"directory"` // Base directory for auto-naming
	Name      string `toml:"name"`      // Program name override for auto-naming; empty derives from the executable

	// Formatting
	TimestampFormat string `toml:"timestamp_format"` // Display layout for the line timestamp

	// Duplicate suppression
	MaxHistory    int64 `toml:"max_history"`     // History capacity; 0 disables suppression
	StaleWindowMs int64 `toml:"stale_window_ms"` // Suppression window; 0 disables suppression

	// Deferred mode
	ProbeIntervalMs int64 `toml:"probe_interval_ms"` // Wait between lock probes

	// Console sink
	EnableConsole bool   `toml:"enable_console"` // Mirror accepted entries to the console sink
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal diagnostics to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	FilePath:  "",
	Directory: ".",
	Name:      "",

	TimestampFormat: defaultTimestampFormat,

	MaxHistory:    defaultMaxHistory,
	StaleWindowMs: defaultStaleWindowMs,

	ProbeIntervalMs: minWaitTime.Milliseconds(),

	EnableConsole: false,
	ConsoleTarget: "stdout",

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("dlog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "dlog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	// Apply overrides using reflection
	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	// Validate the configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromStrings creates a Config from defaults plus "key=value"
// override strings, converting values to the field's type
func NewConfigFromStrings(overrides ...string) (*Config, error) {
	cfg := DefaultConfig()

	var errs []error
	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := applyStringOverride(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	var combined error
	for _, err := range errs {
		combined = combineErrors(combined, err)
	}
	if combined != nil {
		return nil, combined
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyStringOverride sets a single field from its string representation
func applyStringOverride(cfg *Config, key, value string) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") != key {
			continue
		}
		field := v.Field(i)

		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Int64:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmtErrorf("invalid value for %s: %q", key, value)
			}
			field.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmtErrorf("invalid value for %s: %q", key, value)
			}
			field.SetBool(b)
		default:
			return fmtErrorf("unsupported field type for %s: %v", key, field.Kind())
		}
		return nil
	}

	return fmtErrorf("unknown config key: %s", key)
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	// Create a map of field names to field values for efficient lookup
	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.FilePath == "" && strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("directory cannot be empty when auto-naming is active")
	}

	if c.MaxHistory < 0 {
		return fmtErrorf("max_history cannot be negative: %d", c.MaxHistory)
	}

	if c.StaleWindowMs < 0 {
		return fmtErrorf("stale_window_ms cannot be negative: %d", c.StaleWindowMs)
	}

	if c.ProbeIntervalMs <= 0 {
		return fmtErrorf("probe_interval_ms must be positive: %d", c.ProbeIntervalMs)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// FILE: lixenwraith/dlog/config_test.go
package dlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies defaults and copy semantics
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.FilePath)
	assert.Equal(t, ".", cfg.Directory)
	assert.Equal(t, defaultMaxHistory, cfg.MaxHistory)
	assert.Equal(t, defaultStaleWindowMs, cfg.StaleWindowMs)
	assert.Equal(t, defaultTimestampFormat, cfg.TimestampFormat)
	assert.Equal(t, "stdout", cfg.ConsoleTarget)

	// Mutating the returned copy must not leak into later defaults
	cfg.MaxHistory = 7
	assert.Equal(t, defaultMaxHistory, DefaultConfig().MaxHistory)
}

// TestConfigValidate exercises the validation rules
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		wantError string
	}{
		{
			name:   "valid default",
			mutate: func(cfg *Config) {},
		},
		{
			name:      "empty timestamp format",
			mutate:    func(cfg *Config) { cfg.TimestampFormat = " " },
			wantError: "timestamp_format",
		},
		{
			name:      "empty directory with auto-naming",
			mutate:    func(cfg *Config) { cfg.Directory = "" },
			wantError: "directory",
		},
		{
			name:   "empty directory with manual path",
			mutate: func(cfg *Config) { cfg.Directory = ""; cfg.FilePath = "/tmp/x.log" },
		},
		{
			name:      "negative max history",
			mutate:    func(cfg *Config) { cfg.MaxHistory = -1 },
			wantError: "max_history",
		},
		{
			name:      "negative stale window",
			mutate:    func(cfg *Config) { cfg.StaleWindowMs = -1 },
			wantError: "stale_window_ms",
		},
		{
			name:      "zero probe interval",
			mutate:    func(cfg *Config) { cfg.ProbeIntervalMs = 0 },
			wantError: "probe_interval_ms",
		},
		{
			name:      "invalid console target",
			mutate:    func(cfg *Config) { cfg.ConsoleTarget = "file" },
			wantError: "console_target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

// TestNewConfigFromDefaults verifies typed override application
func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"max_history":     int64(10),
		"stale_window_ms": 1000,
		"enable_console":  true,
		"console_target":  "stderr",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), cfg.MaxHistory)
	assert.Equal(t, int64(1000), cfg.StaleWindowMs)
	assert.True(t, cfg.EnableConsole)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
}

// TestNewConfigFromDefaultsErrors verifies override rejection
func TestNewConfigFromDefaultsErrors(t *testing.T) {
	_, err := NewConfigFromDefaults(map[string]any{"unknown_key": 1})
	assert.Error(t, err)

	_, err = NewConfigFromDefaults(map[string]any{"max_history": "fifty"})
	assert.Error(t, err)

	_, err = NewConfigFromDefaults(map[string]any{"max_history": int64(-5)})
	assert.Error(t, err)
}

// TestNewConfigFromStrings verifies key=value override parsing
func TestNewConfigFromStrings(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		verify    func(t *testing.T, cfg *Config)
		wantError bool
	}{
		{
			name: "basic overrides",
			overrides: []string{
				"max_history=10",
				"directory=/tmp/dlog",
				"enable_console=true",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(10), cfg.MaxHistory)
				assert.Equal(t, "/tmp/dlog", cfg.Directory)
				assert.True(t, cfg.EnableConsole)
			},
		},
		{
			name:      "invalid format",
			overrides: []string{"no_equals_sign"},
			wantError: true,
		},
		{
			name:      "unknown key",
			overrides: []string{"unknown_key=value"},
			wantError: true,
		},
		{
			name:      "invalid value type",
			overrides: []string{"max_history=not_a_number"},
			wantError: true,
		},
		{
			name:      "validation failure",
			overrides: []string{"console_target=pipe"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfigFromStrings(tt.overrides...)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				tt.verify(t, cfg)
			}
		})
	}
}

// TestNewConfigFromFile verifies TOML loading through the config loader
func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlog.toml")
	content := `[dlog]
max_history = 25
stale_window_ms = 5000
directory = "/var/log/test"
console_target = "stderr"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, int64(25), cfg.MaxHistory)
	assert.Equal(t, int64(5000), cfg.StaleWindowMs)
	assert.Equal(t, "/var/log/test", cfg.Directory)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)

	// Unset keys keep defaults
	assert.Equal(t, defaultTimestampFormat, cfg.TimestampFormat)
}

// TestNewConfigFromFileMissing verifies a missing file yields defaults
func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultMaxHistory, cfg.MaxHistory)
}

// TestConfigClone verifies deep-copy independence
func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.MaxHistory = 99
	clone.Directory = "/elsewhere"

	assert.Equal(t, defaultMaxHistory, cfg.MaxHistory)
	assert.Equal(t, ".", cfg.Directory)
}

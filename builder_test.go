// FILE: lixenwraith/dlog/builder_test.go
package dlog

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderDefaults verifies a plain Build yields the default config
func TestBuilderDefaults(t *testing.T) {
	w, err := NewBuilder().Build()
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, defaultMaxHistory, w.cfg.MaxHistory)
	assert.Equal(t, defaultStaleWindowMs, w.cfg.StaleWindowMs)
}

// TestBuilderChaining verifies chained setters reach the built writer
func TestBuilderChaining(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := NewBuilder().
		Directory(tmpDir).
		Name("svc").
		MaxHistory(5).
		StaleWindow(2 * time.Minute).
		ProbeInterval(20 * time.Millisecond).
		EnableConsole(true).
		ConsoleTarget("stderr").
		Build()
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, tmpDir, w.cfg.Directory)
	assert.Equal(t, "svc", w.cfg.Name)
	assert.Equal(t, int64(5), w.cfg.MaxHistory)
	assert.Equal(t, int64(120_000), w.cfg.StaleWindowMs)
	assert.Equal(t, int64(20), w.cfg.ProbeIntervalMs)
	assert.True(t, w.cfg.EnableConsole)
	assert.Equal(t, "stderr", w.cfg.ConsoleTarget)
}

// TestBuilderFilePath verifies a fixed path disables auto-naming
func TestBuilderFilePath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fixed.log")

	w, err := NewBuilder().FilePath(logPath).Build()
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, logPath, w.LogName())
}

// TestBuilderInvalidConfig verifies validation errors surface at Build
func TestBuilderInvalidConfig(t *testing.T) {
	_, err := NewBuilder().ConsoleTarget("pipe").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console_target")

	_, err = NewBuilder().MaxHistory(-1).Build()
	assert.Error(t, err)
}

// TestBuilderFailureHandler verifies handlers registered through the
// builder receive write failures
func TestBuilderFailureHandler(t *testing.T) {
	var mu sync.Mutex
	var got string

	w, err := NewBuilder().
		FilePath(filepath.Join(t.TempDir(), "missing", "deep", "out.log")).
		OnWriteFailure(func(msg string, err error) {
			mu.Lock()
			got = msg
			mu.Unlock()
		}).
		Build()
	require.NoError(t, err)
	defer w.Close()

	w.Write("builder handler", LevelError)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "builder handler", got)
}

// FILE: lixenwraith/dlog/default.go
package dlog

import (
	"sync"
)

// Package-level default writer, auto-named with default settings.
// Configure replaces it; the zero-configuration instance is created on
// first use.
var (
	defaultMu     sync.Mutex
	defaultWriter *Writer
)

// Configure replaces the package default writer with one built from
// the given configuration. The previous default, if any, is closed.
func Configure(cfg *Config) error {
	w, err := NewWriter(cfg)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	old := defaultWriter
	defaultWriter = w
	defaultMu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// getDefault returns the default writer, creating it on first use.
func getDefault() *Writer {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultWriter == nil {
		// DefaultConfig always validates
		defaultWriter, _ = NewWriter(DefaultConfig())
	}
	return defaultWriter
}

// Default package-level functions that delegate to the default writer

// Write performs a blocking write on the default writer.
func Write(message string, level int64) {
	getDefault().Write(message, level)
}

// WriteAsync performs a non-blocking write on the default writer.
func WriteAsync(message string, level int64) <-chan struct{} {
	return getDefault().WriteAsync(message, level)
}

// WriteDeferred performs a deferred write on the default writer.
func WriteDeferred(message string, level int64, retries int) {
	getDefault().WriteDeferred(message, level, retries)
}

// ClearHistory empties the default writer's history.
func ClearHistory() {
	getDefault().ClearHistory()
}

// LogName returns the default writer's current target file path.
func LogName() string {
	return getDefault().LogName()
}

// LogPath returns the default writer's current target directory.
func LogPath() string {
	return getDefault().LogPath()
}

// OnWriteFailure registers a failure handler on the default writer.
func OnWriteFailure(fn FailureHandler) {
	getDefault().OnWriteFailure(fn)
}

// Close disposes the default writer.
func Close() error {
	defaultMu.Lock()
	w := defaultWriter
	defaultMu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}

// FILE: lixenwraith/dlog/writer.go
package dlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of the writer
type State struct {
	Closed      atomic.Bool
	ConsoleSink atomic.Value // stores *sink

	// Statistics
	TotalAccepted   atomic.Uint64 // Entries appended to the file
	TotalSuppressed atomic.Uint64 // Entries rejected as duplicates
	TotalFailures   atomic.Uint64 // Failed append attempts
	TotalRotations  atomic.Uint64 // Target path regenerations
	TotalConsole    atomic.Uint64 // Console-only sentinel writes
}

// Stats is a point-in-time snapshot of writer counters.
type Stats struct {
	Accepted    uint64
	Suppressed  uint64
	Failures    uint64
	Rotations   uint64
	ConsoleOnly uint64
	HistorySize int
}

// Writer is the deduplicating log writer. It appends timestamped text
// lines to a rotating file, suppressing duplicate (message, level)
// pairs seen within the configured stale window. Safe for concurrent
// use; see Close for disposal semantics.
type Writer struct {
	cfg        *Config
	state      State
	serializer *serializer
	failures   failureNotifier

	// mu guards the history together with the rotation date and
	// current target path, so evict-then-check-then-insert runs as one
	// atomic unit. File I/O happens outside this lock; line order in
	// the file across concurrent callers is not guaranteed.
	mu            sync.Mutex
	hist          history
	targetPath    string
	autoNamed     bool
	rotationYear  int
	rotationMonth time.Month
	rotationDay   int

	probeInterval time.Duration

	// now is the clock source, replaceable in tests
	now func() time.Time
}

// NewWriter creates a Writer from a validated configuration. A nil
// config uses defaults. The configuration is fixed for the lifetime of
// the writer: manual target path when file_path is set, auto-naming by
// date otherwise.
func NewWriter(cfg *Config) (*Writer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	w := &Writer{
		cfg:           cfg.Clone(),
		serializer:    newSerializer(cfg.TimestampFormat),
		probeInterval: time.Duration(cfg.ProbeIntervalMs) * time.Millisecond,
		now:           time.Now,
	}

	w.hist = history{
		maxCount:    cfg.MaxHistory,
		staleWindow: time.Duration(cfg.StaleWindowMs) * time.Millisecond,
	}

	if cfg.FilePath != "" {
		w.targetPath = cfg.FilePath
	} else {
		w.autoNamed = true
	}

	// The console sink is always wired: LevelNone entries use it even
	// when mirroring of accepted lines is disabled
	var target io.Writer = os.Stdout
	if cfg.ConsoleTarget == "stderr" {
		target = os.Stderr
	}
	w.state.ConsoleSink.Store(&sink{w: target})

	return w, nil
}

// Write accepts a log request, applies rotation and deduplication
// policy, and persists the entry. The caller blocks until the append
// completes or fails. No error escapes; failures are delivered to the
// registered failure handlers.
func (w *Writer) Write(message string, level int64) {
	now := w.now()

	// The single skip branch: the sentinel bypasses history and file
	// entirely and is echoed unconditionally
	if level == LevelNone {
		w.echoConsole(w.serializer.serialize(now, level, message))
		w.state.TotalConsole.Add(1)
		return
	}

	if w.state.Closed.Load() {
		return
	}

	w.mu.Lock()
	path := w.rotateLocked(now)
	accepted := w.hist.admit(message, level, now)
	w.mu.Unlock()

	if !accepted {
		w.state.TotalSuppressed.Add(1)
		return
	}

	// A disposal racing with this write may still let the append land
	// after Close returns; callers get no quiescence guarantee
	if w.state.Closed.Load() {
		return
	}

	line := w.serializer.serialize(now, level, message)
	if err := appendLine(path, line); err != nil {
		w.state.TotalFailures.Add(1)
		w.internalLog("write failed: %v\n", err)
		w.failures.notify(message, err)
		return
	}

	w.state.TotalAccepted.Add(1)
	if w.cfg.EnableConsole {
		w.echoConsole(line)
	}
}

// WriteAsync runs the same logic as Write without blocking the caller.
// The returned channel closes when the attempt settles, whether the
// append succeeded, was suppressed, or failed; callers may await it or
// let the write run detached.
func (w *Writer) WriteAsync(message string, level int64) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Write(message, level)
	}()
	return done
}

// ClearHistory empties the duplicate-detection history. No other side
// effects; previously suppressed messages become loggable again.
func (w *Writer) ClearHistory() {
	w.mu.Lock()
	w.hist.clear()
	w.mu.Unlock()
}

// LogName returns the full path of the current target file. With
// auto-naming active it is computed from the current date even if no
// write has triggered rotation yet. Pure accessor; no state changes.
func (w *Writer) LogName() string {
	if !w.autoNamed {
		return w.cfg.FilePath
	}
	return datedLogPath(w.cfg.Directory, w.programName(), w.now())
}

// LogPath returns the directory containing the current target file.
func (w *Writer) LogPath() string {
	return filepath.Dir(w.LogName())
}

// OnWriteFailure registers a handler for failed write attempts. The
// handler receives the original message text and the underlying error.
// Handlers may be invoked concurrently from multiple writer
// goroutines.
func (w *Writer) OnWriteFailure(fn FailureHandler) {
	w.failures.register(fn)
}

// Stats returns a snapshot of the writer counters.
func (w *Writer) Stats() Stats {
	w.mu.Lock()
	histSize := w.hist.size()
	w.mu.Unlock()

	return Stats{
		Accepted:    w.state.TotalAccepted.Load(),
		Suppressed:  w.state.TotalSuppressed.Load(),
		Failures:    w.state.TotalFailures.Load(),
		Rotations:   w.state.TotalRotations.Load(),
		ConsoleOnly: w.state.TotalConsole.Load(),
		HistorySize: histSize,
	}
}

// Close disposes the writer: the history is cleared and new writes
// become no-ops. Idempotent and safe to call multiple times. Disposal
// is fire-and-forget with respect to in-flight writes; a write that
// started before Close may still complete after Close returns.
func (w *Writer) Close() error {
	if !w.state.Closed.CompareAndSwap(false, true) {
		return nil
	}

	w.mu.Lock()
	w.hist.clear()
	w.mu.Unlock()

	return nil
}

// internalLog handles writing internal writer diagnostics to stderr, if enabled.
func (w *Writer) internalLog(format string, args ...any) {
	if !w.cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "dlog: " prefix
	if !strings.HasPrefix(format, "dlog: ") {
		format = "dlog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}

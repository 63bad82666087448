// FILE: lixenwraith/dlog/constant.go
package dlog

import (
	"time"
)

// Log level constants
const (
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8

	// LevelNone is the console-only sentinel. Entries written at this
	// level bypass the history and the file entirely and are echoed to
	// the console sink unconditionally, never deduplicated.
	LevelNone int64 = 16
)

// Defaults for construction parameters
const (
	defaultMaxHistory    int64 = 50
	defaultStaleWindowMs int64 = 30 * 60 * 1000
)

// defaultTimestampFormat is the display layout for file and console
// lines, the Go equivalent of "yyyy-MM-dd hh:mm:ss.fff tt".
const defaultTimestampFormat = "2006-01-02 03:04:05.000 PM"

// Timers
const (
	// Minimum wait time used throughout the package, also the default
	// lock-probe interval in deferred mode
	minWaitTime = 10 * time.Millisecond
)

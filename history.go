// FILE: lixenwraith/dlog/history.go
package dlog

import (
	"time"
)

// logEntry is a single accepted write retained for duplicate detection.
// Immutable once created; destroyed when evicted from the history.
type logEntry struct {
	Message string
	Level   int64
	At      time.Time // Monotonic acceptance time, not the display timestamp
}

// history is the bounded FIFO of recently accepted entries.
// It carries no lock of its own: the Writer guards it, together with
// the rotation date, under a single mutex so that
// evict-then-check-then-insert executes as one atomic unit.
type history struct {
	entries     []logEntry
	maxCount    int64
	staleWindow time.Duration
}

// evict removes entries from the front while the oldest entry is stale
// or the queue exceeds its capacity. An oversized queue is trimmed even
// if entries are fresh; a correctly sized queue is trimmed if entries
// are stale. With maxCount or staleWindow at zero this empties the
// queue on every call, which is the documented way to disable
// deduplication.
func (h *history) evict(now time.Time) {
	for len(h.entries) > 0 {
		oldest := h.entries[0]
		if now.Sub(oldest.At) >= h.staleWindow || int64(len(h.entries)) > h.maxCount {
			h.entries = h.entries[1:]
			continue
		}
		break
	}
}

// contains reports whether an entry with identical message text and
// identical level exists anywhere in the remaining history.
func (h *history) contains(message string, level int64) bool {
	for i := range h.entries {
		if h.entries[i].Message == message && h.entries[i].Level == level {
			return true
		}
	}
	return false
}

// insert appends a new entry at the back of the queue.
func (h *history) insert(message string, level int64, now time.Time) {
	h.entries = append(h.entries, logEntry{
		Message: message,
		Level:   level,
		At:      now,
	})
}

// admit runs the evict-then-check-then-insert sequence and reports
// whether the entry was accepted (true) or suppressed as a duplicate.
func (h *history) admit(message string, level int64, now time.Time) bool {
	h.evict(now)
	if h.contains(message, level) {
		return false
	}
	h.insert(message, level, now)
	return true
}

// clear empties the queue.
func (h *history) clear() {
	h.entries = nil
}

// size returns the current entry count.
func (h *history) size() int {
	return len(h.entries)
}

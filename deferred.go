// FILE: lixenwraith/dlog/deferred.go
package dlog

import (
	"time"
)

// WriteDeferred performs a fire-and-forget write that first waits, up
// to the caller-supplied retry budget, for the target file to become
// unlocked. While the non-blocking lock probe reports the file as
// held, the background goroutine sleeps one probe interval and retries;
// no other caller is delayed. Once the file frees up within the
// budget, the normal write path runs. If the budget expires while the
// file is still locked the write is abandoned and reported through the
// failure handlers. No ordering guarantee relative to other concurrent
// writes.
func (w *Writer) WriteDeferred(message string, level int64, retries int) {
	go func() {
		// The sentinel never touches the file, so there is nothing to
		// probe for
		if level == LevelNone {
			w.Write(message, level)
			return
		}

		if w.state.Closed.Load() {
			return
		}

		path := w.LogName()
		locked := probeLocked(path)
		for attempt := 0; locked && attempt < retries; attempt++ {
			time.Sleep(w.probeInterval)
			locked = probeLocked(path)
		}

		if locked {
			w.state.TotalFailures.Add(1)
			err := fmtErrorf("target file '%s' still locked after %d retries", path, retries)
			w.internalLog("deferred write abandoned: %v\n", err)
			w.failures.notify(message, err)
			return
		}

		w.Write(message, level)
	}()
}

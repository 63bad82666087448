// FILE: lixenwraith/dlog/deferred_test.go
package dlog

import (
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// holdLock takes an exclusive flock on path and returns a release func
func holdLock(t *testing.T, path string) func() {
	t.Helper()
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)
	require.NoError(t, syscall.Flock(int(file.Fd()), syscall.LOCK_EX))

	var once sync.Once
	return func() {
		once.Do(func() {
			_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
			_ = file.Close()
		})
	}
}

// TestDeferredWritesImmediatelyWhenUnlocked verifies the happy path
func TestDeferredWritesImmediatelyWhenUnlocked(t *testing.T) {
	w, path := createTestWriter(t)
	defer w.Close()

	w.WriteDeferred("deferred message", LevelInfo, 3)

	require.Eventually(t, func() bool {
		return len(readLines(t, path)) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Contains(t, readLines(t, path)[0], "deferred message")
}

// TestDeferredWaitsForRelease verifies the write lands once the lock
// is released within the retry budget
func TestDeferredWaitsForRelease(t *testing.T) {
	w, path := createTestWriter(t)
	defer w.Close()

	release := holdLock(t, path)
	defer release()

	w.WriteDeferred("waited for lock", LevelInfo, 200)

	// Give the probe loop a few rounds against the held lock
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, readLines(t, path))

	release()

	require.Eventually(t, func() bool {
		return len(readLines(t, path)) == 1
	}, 3*time.Second, 10*time.Millisecond)
	assert.Contains(t, readLines(t, path)[0], "waited for lock")
}

// TestDeferredBudgetExhausted verifies the write is abandoned through
// the failure handlers when the lock outlives the budget
func TestDeferredBudgetExhausted(t *testing.T) {
	w, path := createTestWriter(t)
	defer w.Close()

	release := holdLock(t, path)
	defer release()

	var mu sync.Mutex
	var failures []string
	w.OnWriteFailure(func(msg string, err error) {
		mu.Lock()
		failures = append(failures, msg)
		mu.Unlock()
		assert.Contains(t, err.Error(), "still locked")
	})

	w.WriteDeferred("abandoned message", LevelInfo, 3)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(failures) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Equal(t, "abandoned message", failures[0])
	mu.Unlock()

	// The abandoned write never reached the file
	release()
	assert.Empty(t, readLines(t, path))
	assert.Equal(t, uint64(1), w.Stats().Failures)
}

// TestDeferredSentinelSkipsProbe verifies LevelNone goes straight to
// the console regardless of file lock state
func TestDeferredSentinelSkipsProbe(t *testing.T) {
	w, path := createTestWriter(t)
	defer w.Close()

	release := holdLock(t, path)
	defer release()

	w.WriteDeferred("sentinel", LevelNone, 0)

	require.Eventually(t, func() bool {
		return w.Stats().ConsoleOnly == 1
	}, time.Second, 10*time.Millisecond)
}

// TestDeferredAfterClose verifies deferred writes are no-ops once the
// writer is disposed
func TestDeferredAfterClose(t *testing.T) {
	w, path := createTestWriter(t)
	require.NoError(t, w.Close())

	w.WriteDeferred("after close", LevelInfo, 3)

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, readLines(t, path))
}

// FILE: lixenwraith/dlog/failure.go
package dlog

import (
	"sync"
)

// FailureHandler receives the original message text of a failed write
// together with the underlying error. Handlers are invoked
// synchronously at the failure site with no writer lock held and may
// be called concurrently from multiple goroutines; a handler must be
// safe for concurrent invocation or apply its own serialization.
type FailureHandler func(message string, err error)

// failureNotifier holds the registered listener set. Registration is
// rare; invocation copies the slice under a read lock so handlers run
// without holding it.
type failureNotifier struct {
	mu       sync.RWMutex
	handlers []FailureHandler
}

// register appends a handler to the listener set.
func (n *failureNotifier) register(fn FailureHandler) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	n.handlers = append(n.handlers, fn)
	n.mu.Unlock()
}

// notify invokes all registered handlers. With no handlers attached
// the failure is dropped.
func (n *failureNotifier) notify(message string, err error) {
	n.mu.RLock()
	handlers := make([]FailureHandler, len(n.handlers))
	copy(handlers, n.handlers)
	n.mu.RUnlock()

	for _, fn := range handlers {
		fn(message, err)
	}
}

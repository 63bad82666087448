// FILE: lixenwraith/dlog/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/dlog"
)

// GnetAdapter wraps dlog.Writer to implement gnet's logging.Logger
// interface. Writes are synchronous in the underlying writer, so no
// flush step is needed before the fatal handler runs.
type GnetAdapter struct {
	writer       *dlog.Writer
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(writer *dlog.Writer, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		writer: writer,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.writer.Write(fmt.Sprintf(format, args...), dlog.LevelDebug)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.writer.Write(fmt.Sprintf(format, args...), dlog.LevelInfo)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.writer.Write(fmt.Sprintf(format, args...), dlog.LevelWarn)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.writer.Write(fmt.Sprintf(format, args...), dlog.LevelError)
}

// Fatalf logs at error level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.writer.Write(msg, dlog.LevelError)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

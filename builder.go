// FILE: lixenwraith/dlog/builder.go
package dlog

import (
	"time"
)

// Builder provides a fluent API for building writer configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg      *Config
	handlers []FailureHandler
	err      error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Writer instance with the specified configuration.
func (b *Builder) Build() (*Writer, error) {
	if b.err != nil {
		return nil, b.err
	}

	w, err := NewWriter(b.cfg)
	if err != nil {
		return nil, err
	}

	for _, fn := range b.handlers {
		w.OnWriteFailure(fn)
	}

	return w, nil
}

// FilePath sets a fixed target path, disabling auto-naming.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// Directory sets the base directory for auto-naming.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Name sets the program-name override for auto-naming.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// TimestampFormat sets the display layout for line timestamps.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// MaxHistory sets the duplicate-detection history capacity.
func (b *Builder) MaxHistory(count int64) *Builder {
	b.cfg.MaxHistory = count
	return b
}

// StaleWindow sets the duplicate-suppression window.
func (b *Builder) StaleWindow(d time.Duration) *Builder {
	b.cfg.StaleWindowMs = d.Milliseconds()
	return b
}

// ProbeInterval sets the deferred-mode lock-probe wait.
func (b *Builder) ProbeInterval(d time.Duration) *Builder {
	b.cfg.ProbeIntervalMs = d.Milliseconds()
	return b
}

// EnableConsole enables mirroring accepted lines to the console sink.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for the console sink.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// OnWriteFailure registers a failure handler on the built writer.
func (b *Builder) OnWriteFailure(fn FailureHandler) *Builder {
	b.handlers = append(b.handlers, fn)
	return b
}

// Example usage:
// writer, err := dlog.NewBuilder().
//
//	Directory("/var/log/app").
//	MaxHistory(100).
//	StaleWindow(10 * time.Minute).
//	OnWriteFailure(func(msg string, err error) { fmt.Println(msg, err) }).
//	Build()
//
// if err == nil {
//
//	 defer writer.Close()
//	 writer.Write("service started", dlog.LevelInfo)
//
// }

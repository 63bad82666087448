// FILE: lixenwraith/dlog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/dlog"
)

// Builder provides a flexible way to create configured adapters for gnet and fasthttp
// It can use an existing *dlog.Writer instance or create a new one from a *dlog.Config
type Builder struct {
	writer *dlog.Writer
	cfg    *dlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithWriter specifies an existing writer to use for the adapters
// Recommended for applications that already have a central writer instance
// If this is set WithConfig is ignored
func (b *Builder) WithWriter(w *dlog.Writer) *Builder {
	if w == nil {
		b.err = fmt.Errorf("dlog/compat: provided writer cannot be nil")
		return b
	}
	b.writer = w
	return b
}

// WithConfig provides a configuration for a new writer instance
// This is used only if an existing writer is NOT provided via WithWriter
// If neither WithWriter nor WithConfig is used, a default writer will be created
func (b *Builder) WithConfig(cfg *dlog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getWriter resolves the writer to be used, creating one if necessary
func (b *Builder) getWriter() (*dlog.Writer, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing writer was provided, so we use it
	if b.writer != nil {
		return b.writer, nil
	}

	cfg := b.cfg
	if cfg == nil {
		// If no config was provided, use the default
		cfg = dlog.DefaultConfig()
	}

	w, err := dlog.NewWriter(cfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created writer for subsequent builds with this builder
	b.writer = w
	return w, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	w, err := b.getWriter()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(w, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	w, err := b.getWriter()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(w, opts...), nil
}

// GetWriter returns the underlying *dlog.Writer instance
// If a writer has not been provided or created yet, it will be initialized
func (b *Builder) GetWriter() (*dlog.Writer, error) {
	return b.getWriter()
}

// --- Example Usage ---
//
// The following demonstrates how to integrate dlog with gnet and fasthttp
// using a single, shared writer instance
//
//	// 1. Create and configure application's dedup writer
//	cfg := dlog.DefaultConfig()
//	cfg.Directory = "/var/log/app"
//	writer, err := dlog.NewWriter(cfg)
//	if err != nil {
//		panic(fmt.Sprintf("failed to configure writer: %v", err))
//	}
//
//	// 2. Create a builder and provide the existing writer
//	builder := compat.NewBuilder().WithWriter(writer)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// 4. Configure your servers with the adapters
//
//	// For gnet:
//	var events gnet.EventHandler // your-event-handler
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")

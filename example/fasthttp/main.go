// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/dlog"
	"github.com/lixenwraith/dlog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure the dedup writer; a flapping peer that
	// triggers the same serve error on every request produces one log
	// line per stale window instead of one per request
	cfg := dlog.DefaultConfig()
	cfg.Directory = "/var/log/fasthttp"
	cfg.StaleWindowMs = 60_000
	writer, err := dlog.NewWriter(cfg)
	if err != nil {
		panic(err)
	}
	defer writer.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		writer,
		compat.WithDefaultLevel(dlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// Custom logic to detect log levels
	// Can inspect specific fasthttp message patterns

	if strings.Contains(msg, "connection cannot be served") {
		return dlog.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return dlog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}

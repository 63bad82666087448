// FILE: example/simple/main.go
package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/dlog"
	"github.com/lixenwraith/dlog/sanitizer"
)

func main() {
	writer, err := dlog.NewBuilder().
		Directory("/tmp").
		Name("simple").
		StaleWindow(2 * time.Second).
		MaxHistory(20).
		EnableConsole(true).
		OnWriteFailure(func(msg string, err error) {
			fmt.Printf("write failed for %q: %v\n", msg, err)
		}).
		Build()
	if err != nil {
		panic(err)
	}
	defer writer.Close()

	fmt.Println("logging to", writer.LogName())

	// Second write of the same (message, level) pair within the stale
	// window is suppressed
	writer.Write("service started", dlog.LevelInfo)
	writer.Write("service started", dlog.LevelInfo)

	// Same text at a different level is not a duplicate
	writer.Write("service started", dlog.LevelWarn)

	// The sentinel goes to the console only, never to the file
	writer.Write("console-only notice", dlog.LevelNone)

	// Arbitrary values can be flattened onto one line before writing
	writer.Write("config snapshot: "+sanitizer.Dump(dlog.DefaultConfig()), dlog.LevelDebug)

	// After the window elapses the message is loggable again
	time.Sleep(2100 * time.Millisecond)
	writer.Write("service started", dlog.LevelInfo)

	<-writer.WriteAsync("async write", dlog.LevelInfo)

	stats := writer.Stats()
	fmt.Printf("accepted=%d suppressed=%d failures=%d\n",
		stats.Accepted, stats.Suppressed, stats.Failures)
}

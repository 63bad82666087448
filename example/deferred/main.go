// FILE: example/deferred/main.go
package main

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/lixenwraith/dlog"
)

// Demonstrates deferred writes against a file held under an exclusive
// lock. The first deferred write lands once the lock is released
// within its retry budget; the second exhausts its budget and is
// reported through the failure handler instead.
func main() {
	path := "/tmp/deferred_demo.log"

	writer, err := dlog.NewBuilder().
		FilePath(path).
		ProbeInterval(10 * time.Millisecond).
		OnWriteFailure(func(msg string, err error) {
			fmt.Printf("abandoned %q: %v\n", msg, err)
		}).
		Build()
	if err != nil {
		panic(err)
	}
	defer writer.Close()

	// Hold an exclusive lock on the target
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		panic(err)
	}
	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		panic(err)
	}

	writer.WriteDeferred("lands after release", dlog.LevelInfo, 100)
	writer.WriteDeferred("abandoned while locked", dlog.LevelInfo, 5)

	// Let the second write exhaust its budget, then release the lock
	time.Sleep(200 * time.Millisecond)
	syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	file.Close()

	time.Sleep(200 * time.Millisecond)
	stats := writer.Stats()
	fmt.Printf("accepted=%d failures=%d\n", stats.Accepted, stats.Failures)
}

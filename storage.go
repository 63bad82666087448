// FILE: lixenwraith/dlog/storage.go
package dlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// datedLogPath derives the auto-named target for a given instant:
// <base>/Logs/<year>/<month#>-<MonthName>/<name>_<day>.log
func datedLogPath(base, name string, t time.Time) string {
	month := fmt.Sprintf("%d-%s", int(t.Month()), t.Month().String())
	file := fmt.Sprintf("%s_%d.log", name, t.Day())
	return filepath.Join(base, "Logs", fmt.Sprintf("%d", t.Year()), month, file)
}

// programName resolves the base name used for auto-named files. The
// configured override wins; otherwise the executable name, then the
// invocation name as the alternate identity source.
func (w *Writer) programName() string {
	if w.cfg.Name != "" {
		return w.cfg.Name
	}
	if exe, err := os.Executable(); err == nil {
		return trimProgramExt(filepath.Base(exe))
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return trimProgramExt(filepath.Base(os.Args[0]))
	}
	return "dlog"
}

// trimProgramExt strips a trailing extension from an executable name.
func trimProgramExt(name string) string {
	if ext := filepath.Ext(name); ext != "" && name != ext {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// rotateLocked returns the current target path, regenerating it when
// auto-naming is active and the calendar date has changed since the
// last rotation. Callers must hold w.mu. The fallback chain never
// fails: a directory-creation error degrades to a file in the working
// directory named after the running program, using the alternate
// identity source if the primary one is unavailable.
func (w *Writer) rotateLocked(now time.Time) string {
	if !w.autoNamed {
		return w.targetPath
	}

	year, month, day := now.Date()
	if w.targetPath != "" &&
		year == w.rotationYear && month == w.rotationMonth && day == w.rotationDay {
		return w.targetPath
	}

	path := datedLogPath(w.cfg.Directory, w.programName(), now)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.internalLog("failed to create log directory '%s': %v\n", filepath.Dir(path), err)
		path = w.fallbackLogPath()
	}

	w.targetPath = path
	w.rotationYear, w.rotationMonth, w.rotationDay = year, month, day
	w.state.TotalRotations.Add(1)
	return w.targetPath
}

// fallbackLogPath yields a valid-looking path in the working directory
// named after the running program. The executable name is tried first;
// the invocation name is the alternate source. Always returns a path.
func (w *Writer) fallbackLogPath() string {
	if exe, err := os.Executable(); err == nil {
		return trimProgramExt(filepath.Base(exe)) + ".log"
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return trimProgramExt(filepath.Base(os.Args[0])) + ".log"
	}
	return "dlog.log"
}

// appendLine appends one formatted line to the target file, opening it
// in append mode and closing it immediately. No persistent handle is
// held, so other readers and writers can hold the file between calls.
func appendLine(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open log file '%s': %w", path, err)
	}

	_, werr := file.Write(data)
	cerr := file.Close()
	if werr != nil {
		return fmtErrorf("failed to append to log file '%s': %w", path, werr)
	}
	if cerr != nil {
		return fmtErrorf("failed to close log file '%s': %w", path, cerr)
	}
	return nil
}

// probeLocked reports whether the target file is currently held under
// an exclusive lock. Best effort: EWOULDBLOCK on a non-blocking flock
// means locked; any other failure, including file-not-found, is
// treated as not locked so the write proceeds and surfaces its own
// error if one occurs.
func probeLocked(path string) bool {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer file.Close()

	err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err == syscall.EWOULDBLOCK {
		return true
	}
	if err == nil {
		_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	}
	return false
}

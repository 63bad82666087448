// FILE: lixenwraith/dlog/console.go
package dlog

import (
	"io"
)

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// echoConsole writes one formatted line to the console sink. Used
// unconditionally for LevelNone entries and, when enable_console is
// set, to mirror accepted file lines. Console write errors are
// ignored; the console is an auxiliary sink with no failure contract.
func (w *Writer) echoConsole(line []byte) {
	sv := w.state.ConsoleSink.Load()
	if sv == nil {
		return
	}
	if s, ok := sv.(*sink); ok && s.w != nil {
		_, _ = s.w.Write(line)
	}
}

// FILE: lixenwraith/dlog/format.go
package dlog

import (
	"time"

	"github.com/lixenwraith/dlog/sanitizer"
)

// serializer renders accepted entries as single flat-text lines:
// [<timestamp>] [<LEVEL>] <message>
// The message text is sanitized so an entry is always exactly one
// physical line in the file, regardless of embedded control characters.
type serializer struct {
	timestampFormat string
	line            *sanitizer.Sanitizer
}

// newSerializer creates a serializer instance.
func newSerializer(timestampFormat string) *serializer {
	return &serializer{
		timestampFormat: timestampFormat,
		line:            sanitizer.New().Policy(sanitizer.PolicyLine),
	}
}

// serialize converts one entry into its newline-terminated file line.
// The display timestamp is formatted in local time; the history keeps
// its own monotonic reading of the same instant.
func (s *serializer) serialize(timestamp time.Time, level int64, message string) []byte {
	ts := timestamp.Local().Format(s.timestampFormat)
	name := LevelName(level)
	msg := s.line.Sanitize(message)

	buf := make([]byte, 0, len(ts)+len(name)+len(msg)+8)
	buf = append(buf, '[')
	buf = append(buf, ts...)
	buf = append(buf, "] ["...)
	buf = append(buf, name...)
	buf = append(buf, "] "...)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	return buf
}

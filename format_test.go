// FILE: lixenwraith/dlog/format_test.go
package dlog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSerializeLineShape verifies the bracketed line layout
func TestSerializeLineShape(t *testing.T) {
	s := newSerializer("2006-01-02 15:04:05")
	at := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local)

	line := string(s.serialize(at, LevelWarn, "disk nearly full"))
	assert.Equal(t, "[2024-03-05 14:30:00] [WARN] disk nearly full\n", line)
}

// TestSerializeDefaultFormat verifies the twelve-hour default layout
func TestSerializeDefaultFormat(t *testing.T) {
	s := newSerializer(defaultTimestampFormat)
	at := time.Date(2024, time.March, 5, 14, 30, 15, 123_000_000, time.Local)

	line := string(s.serialize(at, LevelInfo, "msg"))
	assert.Contains(t, line, "[2024-03-05 02:30:15.123 PM]")
}

// TestSerializeSanitizesMessage verifies control characters cannot
// break the one-entry-one-line guarantee
func TestSerializeSanitizesMessage(t *testing.T) {
	s := newSerializer(defaultTimestampFormat)

	line := string(s.serialize(time.Now(), LevelInfo, "a\nb\x00c"))
	assert.Equal(t, 1, strings.Count(line, "\n"), "only the terminator newline survives")
	assert.Contains(t, line, "a<0a>b<00>c")
}

// TestSerializeUnicodePassthrough verifies printable non-ASCII text is
// preserved verbatim
func TestSerializeUnicodePassthrough(t *testing.T) {
	s := newSerializer(defaultTimestampFormat)

	line := string(s.serialize(time.Now(), LevelInfo, "température 25°C 日本語"))
	assert.Contains(t, line, "température 25°C 日本語")
}

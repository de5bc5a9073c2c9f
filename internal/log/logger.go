package log

import (
	"fmt"
	"io"
)

// Logger writes verbose progress messages when Enabled is true. Output goes
// to the configured writer (typically stderr), so reports on stdout stay
// machine-readable.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// New returns a logger writing to w, enabled according to verbose.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{Enabled: verbose, W: w}
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}

package logger

import (
	"io"
	"log"
	"os"
)

// Log flags
const (
	LstdFlags     = log.LstdFlags
	Lmicroseconds = log.Lmicroseconds
)

// Logger wraps the standard log.Logger with a verbosity gate so progress
// chatter can be silenced without touching result output.
type Logger struct {
	*log.Logger
	verbose bool
}

// New creates a new logger writing to stderr, keeping stdout clean for
// result output.
func New() *Logger {
	return &Logger{
		Logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// NewWriter creates a new logger that writes to the provided writer
func NewWriter(w io.Writer) *Logger {
	return &Logger{
		Logger: log.New(w, "", log.LstdFlags),
	}
}

// SetVerbose enables Verbosef output.
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

// Verbosef logs only when verbose mode is enabled.
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if l.verbose {
		l.Printf(format, args...)
	}
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// SetFlags sets the output flags for the logger
func (l *Logger) SetFlags(flag int) {
	l.Logger.SetFlags(flag)
}

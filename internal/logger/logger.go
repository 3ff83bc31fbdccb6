package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// DefaultPath is the log file path, relative to the working directory.
const DefaultPath = "logs/pool.txt"

// Level is the severity of a log line.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "ERROR"
	}
	return "INFO"
}

// Logger stores diagnostic lines in memory, appends them to a file on disk and mirrors
// them to a console writer. Errors are coloured when the console supports it.
type Logger struct {
	mu      sync.Mutex
	path    string
	lines   []string
	console *termenv.Output
	now     func() time.Time
}

// New returns a Logger writing to path (DefaultPath if empty) and to stderr.
// The log directory is created if needed.
func New(path string) *Logger {
	return NewWithConsole(path, os.Stderr)
}

// NewWithConsole is New with an explicit console writer; nil disables the mirror.
func NewWithConsole(path string, console io.Writer) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	l := &Logger{path: path, lines: make([]string, 0), now: time.Now}
	if console != nil {
		l.console = termenv.NewOutput(console)
	}
	return l
}

// Infof logs a formatted informational line.
func (l *Logger) Infof(format string, args ...any) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log(LevelError, fmt.Sprintf(format, args...))
}

// Log appends a line at the given level. Each entry is prefixed with [timestamp] LEVEL.
func (l *Logger) Log(level Level, line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level.String() + " " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if l.console != nil {
		out := l.console.String(stamped)
		if level == LevelError {
			out = out.Foreground(l.console.Color("9"))
		}
		_, _ = fmt.Fprintln(l.console, out.String())
	}
	l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns the most recent line, or "".
func (l *Logger) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

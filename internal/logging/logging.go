package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "navmenu.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
	logger       = slog.New(slog.NewJSONHandler(io.Discard, nil))
	baseAttrs    []any
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing. Until Configure
// is called all records are discarded.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = defaultLogFile
	}
	logPath = path
	logger = newLogger(&fileWriter{path: path})
}

// SetOutput redirects records to w. Used by tests that inspect log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	logPath = ""
	logger = newLogger(w)
}

// SetAttrs attaches static attributes (for example the run id) to every record.
func SetAttrs(attrs ...slog.Attr) {
	mu.Lock()
	defer mu.Unlock()
	baseAttrs = baseAttrs[:0]
	for _, a := range attrs {
		baseAttrs = append(baseAttrs, a)
	}
}

// Path reports the configured log file, or "" when not writing to a file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace appends a structured entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	l := logger.With(baseAttrs...)
	mu.Unlock()
	if !enabled {
		return
	}
	if payload == nil {
		l.Debug("trace", slog.String("event", event))
		return
	}
	l.Debug("trace", slog.String("event", event), slog.Any("payload", payload))
}

// Warn records a non-fatal diagnostic regardless of the trace setting.
func Warn(msg string, attrs ...any) {
	mu.Lock()
	l := logger.With(baseAttrs...)
	mu.Unlock()
	l.Warn(msg, attrs...)
}

// Error writes errors to the shared log.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := logger.With(baseAttrs...)
	mu.Unlock()
	l.Error(err.Error())
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fileWriter opens the log file per record so the file can be rotated or
// removed while the program runs.
type fileWriter struct {
	path string
}

func (w *fileWriter) Write(p []byte) (int, error) {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return 0, err
	}
	defer f.Close()
	return f.Write(p)
}

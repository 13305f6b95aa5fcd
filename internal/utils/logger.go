package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Logger writes timestamped lines to a log file, falling back to stdout
// when no file could be opened.
type Logger struct {
	file *os.File
}

func defaultLogPath() string {
	return filepath.Join(os.TempDir(), "triageboard", "triageboard.log")
}

// NewLogger opens the given log file for appending. An empty path selects a
// default location under the system temp directory.
func NewLogger(logFile string) *Logger {
	if logFile == "" {
		logFile = defaultLogPath()
	}
	_ = os.MkdirAll(filepath.Dir(logFile), 0o755)

	logger := &Logger{}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: error opening log file (%s): %v\n",
			time.Now().Format("2006-01-02 15:04:05"), logFile, err)
		return logger
	}
	logger.file = f
	return logger
}

// Write appends a timestamped message to the log (or stdout when no file).
func (l *Logger) Write(message string) {
	if l == nil {
		return
	}
	line := fmt.Sprintf("%s: %s\n", time.Now().Format("2006-01-02 15:04:05"), message)
	if l.file != nil {
		l.file.WriteString(line)
		l.file.Sync()
		return
	}
	fmt.Print(line)
}

// Writef formats and appends a timestamped message.
func (l *Logger) Writef(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Write(fmt.Sprintf(format, args...))
}

// Close flushes and closes the underlying file handle.
func (l *Logger) Close() {
	if l == nil || l.file == nil {
		return
	}
	l.file.Close()
}

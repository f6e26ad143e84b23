// Package logging writes diagnostics to a dated file. The TUI owns the
// terminal, so nothing here may touch stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// Init opens the log file under dir and routes the package logger to it.
// Before Init (or if it fails) logging is a no-op.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	name := fmt.Sprintf("hfblog-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	})
	return nil
}

func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		logger = log.New(io.Discard)
	}
}

func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }

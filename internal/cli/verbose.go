package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 1
	logMaxBackups = 3
)

// Logger fans messages out to the console logger and, when configured, a
// rotated log file. It satisfies storage.Logger.
type Logger struct {
	loggers []*log.Logger
	file    io.Closer
}

// NewLogger creates a console logger on w. Warnings are always shown; debug
// messages only when verbose is set.
func NewLogger(w io.Writer, verbose bool) *Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	console := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "todo",
	})
	return &Logger{loggers: []*log.Logger{console}}
}

// AttachFile additionally logs every level to path in logfmt, rotating the
// file once it grows past logMaxSizeMB.
func (l *Logger) AttachFile(path string) {
	if path == "" || l.file != nil {
		return
	}
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}
	l.file = rot
	l.loggers = append(l.loggers, log.NewWithOptions(rot, log.Options{
		Level:           log.DebugLevel,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
	}))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	for _, lg := range l.loggers {
		lg.Debug(msg, keyvals...)
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	for _, lg := range l.loggers {
		lg.Info(msg, keyvals...)
	}
}

// Warn logs a warning.
func (l *Logger) Warn(msg interface{}, keyvals ...interface{}) {
	for _, lg := range l.loggers {
		lg.Warn(msg, keyvals...)
	}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

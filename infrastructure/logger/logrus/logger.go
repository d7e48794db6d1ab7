// ABOUTME: Logger implementation backed by sirupsen/logrus with JSON output
// ABOUTME: Optionally rotates log files through lumberjack when a file path is configured

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger
type Options struct {
	// Level is one of debug, info, warn, error; unknown values fall back to info
	Level string

	// File, when set, receives log output with size-based rotation
	File string

	// Output overrides the destination; used when File is empty
	Output io.Writer
}

// Logger implements interfaces.Logger using logrus
type Logger struct {
	entry *logrus.Logger
	file  *lumberjack.Logger
}

// New creates a logger from opts
func New(opts Options) *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(ParseLevel(opts.Level))

	l := &Logger{entry: base}
	switch {
	case opts.File != "":
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		base.SetOutput(io.MultiWriter(os.Stdout, l.file))
	case opts.Output != nil:
		base.SetOutput(opts.Output)
	default:
		base.SetOutput(os.Stdout)
	}
	return l
}

// Wrap adapts an existing logrus logger
func Wrap(base *logrus.Logger) *Logger {
	return &Logger{entry: base}
}

// ParseLevel maps a level name to a logrus level
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the rotating log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

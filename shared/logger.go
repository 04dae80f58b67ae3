package shared

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelSuccess
	LevelError
	LevelFatal
)

var levelNames = map[LogLevel]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO ",
	LevelWarn:    "WARN ",
	LevelError:   "ERROR",
	LevelFatal:   "FATAL",
	LevelSuccess: "GOOD ",
}

var levelColors = map[LogLevel]string{
	LevelDebug:   "\033[38;5;14m",  // Bright Cyan
	LevelInfo:    "\033[38;5;12m",  // Bright Blue
	LevelWarn:    "\033[38;5;11m",  // Bright Yellow
	LevelError:   "\033[38;5;9m",   // Bright Red
	LevelFatal:   "\033[48;5;9m",   // Red background
	LevelSuccess: "\033[38;5;10m",  // Bright Green
}

var levelEmojis = map[LogLevel]string{
	LevelDebug:   "🐞",
	LevelInfo:    "ℹ️ ",
	LevelWarn:    "⚠️ ",
	LevelError:   "💥",
	LevelFatal:   "☠️ ",
	LevelSuccess: "✨",
}

// Logger is the main logger struct
type Logger struct {
	mu            sync.Mutex
	minLevel      LogLevel
	logger        *log.Logger
	display       string
	showTimestamp bool
	colorEnabled  bool
	timeFormat    string
}

// New creates a new Logger instance
func New(out io.Writer, minLevel LogLevel) *Logger {
	return &Logger{
		minLevel:      minLevel,
		logger:        log.New(out, "", 0),
		showTimestamp: true,
		colorEnabled:  true,
		timeFormat:    "2006-01-02 15:04:05.000",
	}
}

// DefaultLogger creates a logger with default settings
func DefaultLogger() *Logger {
	return New(os.Stdout, LevelInfo)
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// EnableTimestamp enables/disables timestamp
func (l *Logger) EnableTimestamp(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.showTimestamp = enable
}

// EnableColor enables/disables color output
func (l *Logger) EnableColor(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colorEnabled = enable
}

// Log logs a message at a specific level
func (l *Logger) Log(level LogLevel, msg string, args ...interface{}) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	levelColor := levelColors[level]
	resetColor := "\033[0m"
	if !l.colorEnabled {
		levelColor = ""
		resetColor = ""
	}

	var logLine strings.Builder

	if l.showTimestamp {
		logLine.WriteString(fmt.Sprintf("\033[90m%s\033[0m ", time.Now().Format(l.timeFormat)))
	}

	logLine.WriteString(fmt.Sprintf("%s%s%s %s ", levelColor, levelNames[level], resetColor, levelEmojis[level]))

	if l.display != "" {
		logLine.WriteString(l.display + " ")
	}

	logLine.WriteString(fmt.Sprintf(msg, args...))

	l.logger.Println(logLine.String())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.Log(LevelDebug, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.Log(LevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.Log(LevelWarn, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.Log(LevelError, msg, args...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.Log(LevelFatal, msg, args...)
	os.Exit(1)
}

// Success logs a success message
func (l *Logger) Success(msg string, args ...interface{}) {
	l.Log(LevelSuccess, msg, args...)
}

// PackageLogger creates a logger tagged with a package display name
func PackageLogger(displayName string) *Logger {
	logger := DefaultLogger()
	logger.display = displayName
	return logger
}

// Package logging adapts zap to the chargify.Logger interface.
package logging

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements chargify.Logger on top of zap. Field values under
// sensitive keys are masked before they reach the core.
type Logger struct {
	zap *zap.Logger
}

// New wraps an existing zap logger. A nil logger discards everything.
func New(zapLogger *zap.Logger) *Logger {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}

	return &Logger{zap: zapLogger}
}

// NewConsole builds a human-readable logger writing to stderr. Verbose lowers
// the level to debug; otherwise only warnings and errors are written.
func NewConsole(verbose bool) (*Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return New(zapLogger), nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zap.Debug(msg, zapFields(fields)...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zap.Info(msg, zapFields(fields)...)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zap.Warn(msg, zapFields(fields)...)
}

// Error logs an error.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.zap.Error(msg, zapFields(fields)...)
}

// RequestBody logs an outgoing body with payment details masked.
func (l *Logger) RequestBody(method, url string, body []byte) {
	if len(body) == 0 {
		return
	}

	l.zap.Debug("HTTP Request Body", zap.String("method", method), zap.String("url", url), zap.String("body", MaskBody(body)))
}

// ResponseBody logs a response body with payment details masked.
func (l *Logger) ResponseBody(statusCode int, url string, body []byte) {
	l.zap.Debug("HTTP Response Body", zap.Int("status", statusCode), zap.String("url", url), zap.String("body", MaskBody(body)))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func zapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	masked := MaskFields(fields)

	keys := make([]string, 0, len(masked))
	for key := range masked {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, masked[key]))
	}

	return out
}

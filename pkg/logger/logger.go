package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with app-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a logger. Text handler in debug mode for readability, JSON
// handler in release mode for structured collection.
func New() *Logger {
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds a request ID to the logger context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("request_id", requestID))}
}

// WithError adds an error to the logger context.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("error", err.Error()))}
}

// LogHTTPRequest logs a completed HTTP request.
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogDatasetLoaded logs the row counts of a completed dataset load.
func (l *Logger) LogDatasetLoaded(tourists, attractions, accommodations, visits int) {
	l.Logger.Info("Dataset loaded",
		slog.Int("tourists", tourists),
		slog.Int("attractions", attractions),
		slog.Int("accommodations", accommodations),
		slog.Int("visits", visits),
	)
}

// LogAnalyticsComputed logs a finished analytics computation.
func (l *Logger) LogAnalyticsComputed(name string, duration time.Duration) {
	l.Logger.Debug("Analytics computed",
		slog.String("analytic", name),
		slog.Duration("duration", duration),
	)
}

// LogCacheWarning logs a non-fatal cache failure; the request proceeds
// uncached.
func (l *Logger) LogCacheWarning(op, key string, err error) {
	l.Logger.Warn("Cache operation failed",
		slog.String("op", op),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance.
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance.
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request correlation id
const RequestIDKey = "request_id"

// Logger wraps logrus for structured logging with request context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// FromGinContext creates a logger carrying the request id and route of a gin request
func FromGinContext(c *gin.Context) *Logger {
	logger := New()
	if c == nil {
		return logger
	}

	if id, ok := c.Get(RequestIDKey); ok {
		logger.Entry = logger.Entry.WithField(RequestIDKey, id)
	}
	if route := c.FullPath(); route != "" {
		logger.Entry = logger.Entry.WithField("route", route)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

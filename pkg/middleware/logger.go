package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the request ID in and out.
const HeaderRequestID = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses an incoming X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the ID assigned by RequestID, if any.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger writes one line per request once the handler chain completes.
func Logger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Info()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery turns panics into 500 responses and logs them.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Interface("panic", err).
			Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

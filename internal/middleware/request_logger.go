package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/logger"
	"github.com/guttosm/load-planner/internal/service"
)

// RequestLogger returns a middleware that logs every request to the console and,
// when loggingService is set, stores it in the log collection.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := getLogLevel(statusCode)

		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("client_id", GetClientID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Logger()
		log.WithLevel(zerologLevel(level)).Msg("HTTP request")

		if loggingService == nil {
			return
		}
		enqueueLog(loggingService, &model.LogEntry{
			Timestamp:  time.Now().UTC(),
			Level:      level,
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			ClientID:   GetClientID(c),
		})
	}
}

func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}

func zerologLevel(level string) zerolog.Level {
	switch level {
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

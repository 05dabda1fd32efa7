// Package middleware provides the HTTP middleware of the load planner API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"

	// maxRequestIDLength bounds client supplied IDs so they cannot bloat logs.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// ClientIDKey is the context key for the authenticated API client.
	ClientIDKey ContextKey = "client_id"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client provided X-Request-ID is reused unless it is longer than 128 bytes.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return contextString(c, RequestIDKey)
}

// GetClientID returns the client set by APIKeyAuth, or "" for anonymous requests.
func GetClientID(c *gin.Context) string {
	return contextString(c, ClientIDKey)
}

func contextString(c *gin.Context, key ContextKey) string {
	if v, exists := c.Get(string(key)); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_StoresEntry(t *testing.T) {
	svc := &recordingLoggingService{}
	router := gin.New()
	router.Use(RequestID(), APIKeyAuth(map[string]string{"k": "acme"}), RequestLogger(svc))
	router.GET("/api/vehicle-catalog", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vehicle-catalog", nil)
	req.Header.Set(APIKeyHeader, "k")
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Eventually(t, func() bool { return len(svc.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	entry := svc.snapshot()[0]
	assert.Equal(t, "warn", entry.Level)
	assert.Equal(t, http.StatusNotFound, entry.StatusCode)
	assert.Equal(t, "acme", entry.ClientID)
	assert.Equal(t, "test-agent", entry.UserAgent)
	assert.Empty(t, entry.ActionType)
}

func TestRequestLogger_WithoutService(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, "info", getLogLevel(http.StatusOK))
	assert.Equal(t, "info", getLogLevel(http.StatusFound))
	assert.Equal(t, "warn", getLogLevel(http.StatusBadRequest))
	assert.Equal(t, "error", getLogLevel(http.StatusServiceUnavailable))
}

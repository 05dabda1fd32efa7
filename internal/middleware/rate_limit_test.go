//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/load-planner/internal/domain/dto"
)

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default shards when negative", numShards: -3, wantShards: defaultNumShards},
		{name: "custom shards", numShards: 4, wantShards: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()
			assert.Len(t, rl.shards, tt.wantShards)
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	allowed, remaining := rl.Allow("a")
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)

	allowed, remaining = rl.Allow("a")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _ = rl.Allow("a")
	assert.False(t, allowed)

	allowed, _ = rl.Allow("b")
	assert.True(t, allowed, "identifiers are limited independently")
	assert.Equal(t, 2, rl.Visitors())
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	allowed, _ := rl.Allow("a")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("a")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _ = rl.Allow("a")
	assert.True(t, allowed)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(APIKeyAuth(map[string]string{"k1": "acme", "k2": "globex"}), rl.RateLimit())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(APIKeyHeader, key)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := send("k1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = send("k1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, dto.ErrCodeRateLimit, decodeError(t, w).Error)

	assert.Equal(t, http.StatusOK, send("k2").Code, "other clients keep their own budget")
}

func TestRateLimitIdentifier(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	assert.Equal(t, "ip:10.0.0.1", rateLimitIdentifier(c))

	c.Set(string(ClientIDKey), "acme")
	assert.Equal(t, "client:acme", rateLimitIdentifier(c))
}

func TestRateLimiter_CleanupExpired(t *testing.T) {
	rl := NewRateLimiter(5, 10*time.Millisecond)
	defer rl.Stop()

	rl.Allow("a")
	rl.Allow("b")
	assert.Equal(t, 2, rl.Visitors())

	time.Sleep(30 * time.Millisecond)
	rl.cleanupExpired()
	assert.Zero(t, rl.Visitors())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

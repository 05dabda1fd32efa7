//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotentRouter(cache *IdempotencyCache, status int, calls *int64) *gin.Engine {
	router := gin.New()
	router.Use(APIKeyAuth(map[string]string{"k1": "acme", "k2": "globex"}), Idempotency(cache))
	handler := func(c *gin.Context) {
		n := atomic.AddInt64(calls, 1)
		c.Header("Content-Disposition", "attachment")
		c.String(status, "call-"+strconv.FormatInt(n, 10))
	}
	router.POST("/api/plan", handler)
	router.GET("/api/plan", handler)
	return router
}

func sendIdempotent(router *gin.Engine, method, key, apiKey, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/plan", strings.NewReader(body))
	req.Header.Set(APIKeyHeader, apiKey)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysResponse(t *testing.T) {
	cache := NewIdempotencyCache(time.Minute)
	defer cache.Stop()
	var calls int64
	router := idempotentRouter(cache, http.StatusOK, &calls)

	first := sendIdempotent(router, http.MethodPost, "abc", "k1", `{"items":[]}`)
	second := sendIdempotent(router, http.MethodPost, "abc", "k1", `{"items":[]}`)

	assert.Equal(t, int64(1), calls)
	assert.Equal(t, "call-1", first.Body.String())
	assert.Equal(t, "call-1", second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, "attachment", second.Header().Get("Content-Disposition"))
	assert.Equal(t, first.Header().Get("Content-Type"), second.Header().Get("Content-Type"))
}

func TestIdempotency_DistinguishesRequests(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		apiKey string
		body   string
	}{
		{name: "different body", key: "abc", apiKey: "k1", body: `{"items":[1]}`},
		{name: "different client", key: "abc", apiKey: "k2", body: `{}`},
		{name: "different key", key: "xyz", apiKey: "k1", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewIdempotencyCache(time.Minute)
			defer cache.Stop()
			var calls int64
			router := idempotentRouter(cache, http.StatusOK, &calls)

			sendIdempotent(router, http.MethodPost, "abc", "k1", `{}`)
			w := sendIdempotent(router, http.MethodPost, tt.key, tt.apiKey, tt.body)

			assert.Equal(t, int64(2), calls)
			assert.Equal(t, "call-2", w.Body.String())
		})
	}
}

func TestIdempotency_Bypass(t *testing.T) {
	tests := []struct {
		name   string
		cache  bool
		method string
		key    string
		status int
	}{
		{name: "no cache", cache: false, method: http.MethodPost, key: "abc", status: http.StatusOK},
		{name: "no key", cache: true, method: http.MethodPost, status: http.StatusOK},
		{name: "GET is not cached", cache: true, method: http.MethodGet, key: "abc", status: http.StatusOK},
		{name: "errors are not cached", cache: true, method: http.MethodPost, key: "abc", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cache *IdempotencyCache
			if tt.cache {
				cache = NewIdempotencyCache(time.Minute)
				defer cache.Stop()
			}
			var calls int64
			router := idempotentRouter(cache, tt.status, &calls)

			sendIdempotent(router, tt.method, tt.key, "k1", `{}`)
			w := sendIdempotent(router, tt.method, tt.key, "k1", `{}`)

			assert.Equal(t, int64(2), calls)
			assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
		})
	}
}

func TestIdempotencyCache_Expiry(t *testing.T) {
	cache := NewIdempotencyCache(10 * time.Millisecond)
	defer cache.Stop()

	cache.Set(1, &cachedResponse{statusCode: http.StatusOK, body: []byte("x")})
	resp, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), resp.body)

	time.Sleep(20 * time.Millisecond)
	_, ok = cache.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())

	cache.cleanup()
	assert.Zero(t, cache.Len())
}

func TestNewIdempotencyCache_DefaultTTL(t *testing.T) {
	cache := NewIdempotencyCache(0)
	defer cache.Stop()
	assert.Equal(t, IdempotencyKeyTTL, cache.ttl)
}

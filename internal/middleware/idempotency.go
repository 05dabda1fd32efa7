package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
)

// replayedHeaders are the response headers stored with a cached response.
var replayedHeaders = []string{"Content-Type", "Content-Disposition"}

// Idempotency returns a middleware that replays the stored response of a
// successful POST or PUT sent again with the same Idempotency-Key, client,
// path and body. A nil cache disables it.
func Idempotency(cache *IdempotencyCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || (c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey, err := idempotencyCacheKey(key, GetClientID(c), c.Request)
		if err != nil {
			c.Next()
			return
		}

		if resp, ok := cache.Get(cacheKey); ok {
			for k, v := range resp.headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(resp.statusCode, resp.headers["Content-Type"], resp.body)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			headers := make(map[string]string, len(replayedHeaders))
			for _, h := range replayedHeaders {
				if v := writer.Header().Get(h); v != "" {
					headers[h] = v
				}
			}
			cache.Set(cacheKey, &cachedResponse{
				statusCode: status,
				headers:    headers,
				body:       writer.body.Bytes(),
			})
		}
	}
}

// idempotencyCacheKey hashes the key with the client, method, path and body.
// The body is restored for the handler.
func idempotencyCacheKey(key, clientID string, req *http.Request) (uint64, error) {
	d := xxhash.New()
	for _, part := range []string{key, clientID, req.Method, req.URL.Path} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return 0, err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		_, _ = d.Write(body)
	}
	return d.Sum64(), nil
}

// captureWriter copies the response body while it is written to the client.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

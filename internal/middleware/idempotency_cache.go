package middleware

import (
	"sync"
	"time"
)

type cachedResponse struct {
	statusCode int
	headers    map[string]string
	body       []byte
	storedAt   time.Time
}

// IdempotencyCache keeps successful responses for replay until their TTL passes.
type IdempotencyCache struct {
	mu       sync.RWMutex
	items    map[uint64]*cachedResponse
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyCache creates the cache and starts its cleanup loop.
// A non-positive ttl means IdempotencyKeyTTL.
func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	c := &IdempotencyCache{
		items:  make(map[uint64]*cachedResponse),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get returns an unexpired response.
func (c *IdempotencyCache) Get(key uint64) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.storedAt) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores resp, stamping it with the current time.
func (c *IdempotencyCache) Set(key uint64, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.storedAt = time.Now()
	c.items[key] = resp
}

// Len returns the number of stored responses, expired ones included.
func (c *IdempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *IdempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.storedAt) > c.ttl {
			delete(c.items, key)
		}
	}
}

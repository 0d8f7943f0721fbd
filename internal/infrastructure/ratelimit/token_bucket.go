// Package ratelimit provides a token bucket used to throttle outbound
// calls to the pricing service. The CoinGecko public tier allows roughly
// 30 requests per minute; staying under that locally is cheaper than
// burning retry attempts on 429 responses.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a mutex-guarded token bucket. Tokens refill continuously
// at refillPerMin tokens per minute up to capacity.
type TokenBucket struct {
	mu           sync.Mutex
	capacity     float64
	tokens       float64
	refillPerMin float64
	lastRefill   time.Time

	now func() time.Time
}

// NewTokenBucket creates a full bucket. A refill rate of zero or less
// disables limiting: Allow always returns true.
func NewTokenBucket(capacity int, refillPerMin int) *TokenBucket {
	return &TokenBucket{
		capacity:     float64(capacity),
		tokens:       float64(capacity),
		refillPerMin: float64(refillPerMin),
		lastRefill:   time.Now(),
		now:          time.Now,
	}
}

// Allow consumes one token when available and reports whether the caller
// may proceed.
func (tb *TokenBucket) Allow() bool {
	if tb.refillPerMin <= 0 {
		return true
	}

	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// Tokens reports the current token count, mainly for tests.
func (tb *TokenBucket) Tokens() float64 {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refill()
	return tb.tokens
}

func (tb *TokenBucket) refill() {
	now := tb.now()
	elapsed := now.Sub(tb.lastRefill)
	tb.lastRefill = now

	tb.tokens += tb.refillPerMin * elapsed.Minutes()
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
}

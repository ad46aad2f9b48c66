package telegram

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

var errInvalidSecret = errors.New("invalid webhook secret token")

// validateSecret compares the header token in constant time.
func (h *handler) validateSecret(token string) error {
	if h.webhookSecret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookSecret)) != 1 {
		return errInvalidSecret
	}
	return nil
}

// markSeen reports whether the update id was already handled and records it otherwise.
// Telegram redelivers webhook updates it considers unacknowledged.
func (h *handler) markSeen(updateID int64) bool {
	h.seenMu.Lock()
	defer h.seenMu.Unlock()
	if h.seen.Contains(updateID) {
		return true
	}
	h.seen.Add(updateID, struct{}{})
	return false
}

// rateLimiter keeps one token bucket per user, expiring idle users.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[int64, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(perMin int) *rateLimiter {
	if perMin <= 0 {
		return nil
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[int64, *rate.Limiter](limiterSize, nil, limiterTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    max(1, perMin/10),
	}
}

// Allow is safe on a nil limiter, which allows everything.
func (rl *rateLimiter) Allow(userID int64) error {
	if rl == nil {
		return nil
	}
	if !rl.limiterFor(userID).Allow() {
		return fmt.Errorf("rate limit exceeded for user %d", userID)
	}
	return nil
}

// limiterFor returns the user's bucket, creating it on first use.
// Lookup and insert happen under one lock so concurrent first messages share a bucket.
func (rl *rateLimiter) limiterFor(userID int64) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.limiters.Get(userID)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(userID, limiter)
	}
	return limiter
}

package http

import (
	"math"
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket holding up to capacity tokens.
// Tokens come back continuously, capacity of them per refillDur, so a
// client cannot spend a full bucket on each side of a window boundary.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    float64
	perToken    time.Duration
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	rl := &RateLimiter{
		capacity:    float64(capacity),
		perToken:    refillDur / time.Duration(capacity),
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
		now:         time.Now,
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup forgets clients idle for longer than bucketCleanupThreshold;
// their buckets would be full again anyway.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketCleanupThreshold {
			delete(r.clients, ip)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow takes one token from the client's bucket if one is available.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[ip]
	if !exists {
		bucket = &clientBucket{tokens: r.capacity, lastSeen: now}
		r.clients[ip] = bucket
	}
	bucket.refill(now, r.perToken, r.capacity)

	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}

func (b *clientBucket) refill(now time.Time, perToken time.Duration, capacity float64) {
	elapsed := now.Sub(b.lastSeen)
	if elapsed <= 0 {
		return
	}
	b.lastSeen = now
	if perToken <= 0 {
		b.tokens = capacity
		return
	}
	b.tokens = math.Min(capacity, b.tokens+float64(elapsed)/float64(perToken))
}

package repository

import (
	"context"
	"sync"
	"time"
)

const memorySweepInterval = 10 * time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is an in-process CacheRepository. A zero ttl keeps entries
// until the process exits. With a ttl, a background sweep drops expired
// entries until Stop is called.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	m := &MemoryCache{
		data:      make(map[string]memoryEntry),
		ttl:       ttl,
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweepLoop(sweepInterval(ttl))
	}
	return m
}

func sweepInterval(ttl time.Duration) time.Duration {
	if ttl < memorySweepInterval {
		return ttl
	}
	return memorySweepInterval
}

func (m *MemoryCache) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep removes every expired entry and reports how many it dropped.
func (m *MemoryCache) sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	dropped := 0
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
			dropped++
		}
	}
	return dropped
}

// Stop ends the background sweep. Safe to call more than once.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopSweep) })
}

// Close stops the sweep; it lets the cache sit next to RedisCache in a
// list of closers.
func (m *MemoryCache) Close() error {
	m.Stop()
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !entry.expired(m.now()) {
		return entry.value, true
	}

	m.mu.Lock()
	// a concurrent Set may have refreshed the key since the read lock
	if current, ok := m.data[key]; ok && current.expired(m.now()) {
		delete(m.data, key)
	}
	m.mu.Unlock()
	return "", false
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

// Len reports how many entries are held, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wealth-advisor/domain"
)

const DefaultHistoryCapacity = 100

// HistoryRepositoryMemory is an in-memory implementation of HistoryRepository.
// Once full, each Save overwrites the oldest record.
type HistoryRepositoryMemory struct {
	mu    sync.RWMutex
	data  []domain.CalculationRecord
	next  int
	count int
}

// NewHistoryRepositoryMemory creates a new in-memory history holding at most
// capacity records.
func NewHistoryRepositoryMemory(capacity int) *HistoryRepositoryMemory {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &HistoryRepositoryMemory{
		data: make([]domain.CalculationRecord, capacity),
	}
}

// Save stores the record in memory, filling in ID and CreatedAt when unset.
func (r *HistoryRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[r.next] = record
	r.next = (r.next + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
	return nil
}

func (r *HistoryRepositoryMemory) Recent(n int) []domain.CalculationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 || n > r.count {
		n = r.count
	}
	out := make([]domain.CalculationRecord, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.data)) % len(r.data)
		out = append(out, r.data[idx])
	}
	return out
}

package repository

import (
	"context"

	"wealth-advisor/domain"
)

// HistoryRepository keeps a record of tool invocations.
type HistoryRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	// Recent returns up to n records, newest first. n <= 0 means all.
	Recent(n int) []domain.CalculationRecord
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// CalculationRecord is one tool invocation kept in the in-process history.
type CalculationRecord struct {
	ID        uuid.UUID              `json:"id"`
	Tool      string                 `json:"tool"`
	Params    map[string]interface{} `json:"params"`
	Output    string                 `json:"output"`
	Cached    bool                   `json:"cached"`
	CreatedAt time.Time              `json:"created_at"`
}

package store

import (
	"context"
	"slices"

	"github.com/jjenkins/clients/internal/model"
)

// MemoryStore is a static, in-memory client list
type MemoryStore struct {
	records []model.ClientRecord
}

// NewMemoryStore creates a MemoryStore holding a copy of records
func NewMemoryStore(records []model.ClientRecord) *MemoryStore {
	return &MemoryStore{records: slices.Clone(records)}
}

// GetAll returns a copy of every record in insertion order
func (s *MemoryStore) GetAll(ctx context.Context) ([]model.ClientRecord, error) {
	return slices.Clone(s.records), nil
}

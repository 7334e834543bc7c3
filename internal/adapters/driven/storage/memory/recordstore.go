// Package memory provides in-memory store implementations, used in tests
// and for ephemeral runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Safe for concurrent queries and ingestion.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.Record),
	}
}

// Get retrieves the record for a patient.
func (s *RecordStore) Get(_ context.Context, patient string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[patient]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

// Put stores or replaces a record (last write wins). The original
// CreatedAt is kept when replacing.
func (s *RecordStore) Put(_ context.Context, rec *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *rec
	if prev, ok := s.records[rec.Patient]; ok {
		stored.CreatedAt = prev.CreatedAt
	}
	s.records[rec.Patient] = stored
	return nil
}

// Remove deletes a patient's record.
func (s *RecordStore) Remove(_ context.Context, patient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[patient]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(s.records, patient)
	return nil
}

// List returns all stored records ordered by patient name.
func (s *RecordStore) List(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Patient < out[j].Patient
	})
	return out, nil
}

package services

import (
	"context"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driving"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService exposes stored records for display and cleanup.
type RecordService struct {
	store driven.RecordStore
}

// NewRecordService creates a record service.
func NewRecordService(store driven.RecordStore) *RecordService {
	return &RecordService{store: store}
}

// List returns all stored records ordered by patient name.
func (s *RecordService) List(ctx context.Context) ([]domain.Record, error) {
	return s.store.List(ctx)
}

// Get retrieves one patient's record.
func (s *RecordService) Get(ctx context.Context, patient string) (*domain.Record, error) {
	return s.store.Get(ctx, patient)
}

// Delete removes one patient's record.
func (s *RecordService) Delete(ctx context.Context, patient string) error {
	return s.store.Remove(ctx, patient)
}

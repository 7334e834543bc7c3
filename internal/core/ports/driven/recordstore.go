package driven

import (
	"context"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// RecordStore persists patient records.
// A patient identifier maps to at most one stored text at a time.
type RecordStore interface {
	// Get retrieves the record for a patient.
	// Returns domain.ErrRecordNotFound if the patient has no record.
	Get(ctx context.Context, patient string) (*domain.Record, error)

	// Put stores or replaces a record (last write wins).
	Put(ctx context.Context, rec *domain.Record) error

	// Remove deletes a patient's record.
	// Returns domain.ErrRecordNotFound if the patient has no record.
	Remove(ctx context.Context, patient string) error

	// List returns all stored records ordered by patient name.
	List(ctx context.Context) ([]domain.Record, error)
}

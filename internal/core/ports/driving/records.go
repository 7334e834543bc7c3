package driving

import (
	"context"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// RecordService manages stored patient records for display and cleanup.
type RecordService interface {
	// List returns all stored records ordered by patient name.
	List(ctx context.Context) ([]domain.Record, error)

	// Get retrieves one patient's record.
	Get(ctx context.Context, patient string) (*domain.Record, error)

	// Delete removes one patient's record.
	Delete(ctx context.Context, patient string) error
}

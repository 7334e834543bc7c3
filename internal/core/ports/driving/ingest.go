package driving

import (
	"context"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// IngestWarning reports one file that could not be ingested.
// Failures are isolated per file and never abort the batch.
type IngestWarning struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// IngestReport summarises one upload batch.
type IngestReport struct {
	// BatchID identifies this batch in logs.
	BatchID string `json:"batch_id"`

	// Stored lists the patient identifiers that were stored or replaced.
	Stored []string `json:"stored"`

	// Warnings lists files that were skipped and why.
	Warnings []IngestWarning `json:"warnings,omitempty"`
}

// IngestService turns uploaded documents into stored patient records.
type IngestService interface {
	// IngestFile extracts one file and stores its record.
	// Returns the patient identifier derived from the file name.
	IngestFile(ctx context.Context, src domain.UploadFile) (string, error)

	// IngestPaths ingests files from disk, isolating per-file failures.
	IngestPaths(ctx context.Context, paths []string) (*IngestReport, error)
}

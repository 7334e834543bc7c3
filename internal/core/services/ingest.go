package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driving"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService extracts uploaded documents and stores one record per
// patient. The patient identifier is the file base name without its
// extension; re-uploading the same name replaces the stored content.
type IngestService struct {
	store     driven.RecordStore
	extractor driven.ExtractorRegistry
}

// NewIngestService creates an ingest service.
func NewIngestService(store driven.RecordStore, extractor driven.ExtractorRegistry) *IngestService {
	return &IngestService{
		store:     store,
		extractor: extractor,
	}
}

// IngestFile extracts one file and stores its record, returning the
// patient identifier.
func (s *IngestService) IngestFile(ctx context.Context, src domain.UploadFile) (string, error) {
	text, err := s.extractor.Extract(ctx, src)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", filepath.Base(src.Name()), err)
	}

	patient := PatientName(src.Name())
	now := time.Now()
	rec := &domain.Record{
		Patient:   patient,
		Content:   text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return "", fmt.Errorf("store record %q: %w", patient, err)
	}

	logger.Info("Stored record for %q (%d bytes)", patient, len(text))
	return patient, nil
}

// IngestPaths ingests files from disk. Each file's failure is isolated:
// it becomes a warning in the report and never aborts the batch.
func (s *IngestService) IngestPaths(ctx context.Context, paths []string) (*driving.IngestReport, error) {
	report := &driving.IngestReport{
		BatchID: uuid.New().String(),
	}
	logger.Section("Ingest Batch " + report.BatchID)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		f, err := os.Open(path)
		if err != nil {
			report.Warnings = append(report.Warnings, driving.IngestWarning{
				File:   path,
				Reason: err.Error(),
			})
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}

		patient, err := s.IngestFile(ctx, f)
		f.Close()
		if err != nil {
			report.Warnings = append(report.Warnings, driving.IngestWarning{
				File:   path,
				Reason: err.Error(),
			})
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}

		report.Stored = append(report.Stored, patient)
	}

	logger.Info("Ingest complete: %d stored, %d warnings", len(report.Stored), len(report.Warnings))
	return report, nil
}

// PatientName derives the patient identifier from an uploaded file name:
// the base name with the extension stripped.
func PatientName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

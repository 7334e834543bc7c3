package driven

import (
	"context"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// Extractor converts one document format into plain text.
// Implementations that have several ways to parse a format try them as an
// ordered strategy list, stopping at the first that yields text.
type Extractor interface {
	// SupportedExtensions returns the lower-case file extensions this
	// extractor handles, including the leading dot (e.g. ".pdf").
	SupportedExtensions() []string

	// Extract returns the plain text content of the file bytes.
	Extract(ctx context.Context, name string, data []byte) (string, error)
}

// ExtractorRegistry dispatches a file to the extractor for its extension.
type ExtractorRegistry interface {
	// Extract reads the source and extracts its text.
	// Returns domain.ErrUnsupportedFormat for unknown extensions and
	// domain.ErrNoTextExtracted when parsing yields nothing.
	Extract(ctx context.Context, src domain.UploadFile) (string, error)

	// Register adds an extractor to the registry.
	Register(e Extractor)

	// SupportedExtensions returns all extensions that can be extracted.
	SupportedExtensions() []string
}

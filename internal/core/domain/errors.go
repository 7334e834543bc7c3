package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrRecordNotFound indicates the named patient has no stored record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an uploaded file type no extractor
	// handles. The file is skipped with a warning, never failing the batch.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoTextExtracted indicates extraction ran but produced no text.
	ErrNoTextExtracted = errors.New("no text extracted")

	// ErrLLMUnavailable indicates no generation endpoint is configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)

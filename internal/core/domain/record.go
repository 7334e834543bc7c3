package domain

import "time"

// Record is one patient's medical record. The repository holds at most one
// record per patient; re-uploading replaces the content (last write wins).
type Record struct {
	// Patient is the unique identifier, derived from the uploaded file's
	// base name with the extension stripped.
	Patient string

	// Content is the full extracted text of the record. It is never
	// segmented or truncated; matching treats it as an opaque string.
	Content string

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the record content was last replaced.
	UpdatedAt time.Time
}

// Reference is a (patient, record text) pair disclosed to the caller as
// evidence backing a generated answer. References must always be a subset
// of the records actually embedded in the generation prompt.
type Reference struct {
	Patient string `json:"patient"`
	Content string `json:"content"`
}

// Answer is the final result of one query: the generated (or fixed) text
// plus the records it was grounded in. The pipeline always produces a
// displayable Answer; failures become answer text, not faults.
type Answer struct {
	Text       string      `json:"text"`
	References []Reference `json:"references"`
}

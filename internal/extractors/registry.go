package extractors

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/extractors/docx"
	"github.com/mediq-labs/mediq-cli/internal/extractors/pdf"
	"github.com/mediq-labs/mediq-cli/internal/extractors/plaintext"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches a file to the extractor registered for its
// extension. Lookup is case-insensitive on the extension.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]driven.Extractor)}
}

// Defaults returns a registry with the built-in extractors registered:
// PDF, DOCX and plain text.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(pdf.New())
	r.Register(docx.New())
	r.Register(plaintext.New())
	return r
}

// Register adds an extractor for each extension it supports.
// A later registration for the same extension wins.
func (r *Registry) Register(e driven.Extractor) {
	for _, ext := range e.SupportedExtensions() {
		r.byExt[strings.ToLower(ext)] = e
	}
}

// SupportedExtensions returns all registered extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extract reads the source and extracts its text.
func (r *Registry) Extract(ctx context.Context, src domain.UploadFile) (string, error) {
	ext := strings.ToLower(filepath.Ext(src.Name()))
	extractor, ok := r.byExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filepath.Base(src.Name()), err)
	}

	logger.Debug("Extracting %s (%d bytes, %s)", filepath.Base(src.Name()), len(data), ext)
	text, err := extractor.Extract(ctx, src.Name(), data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrNoTextExtracted
	}
	return text, nil
}

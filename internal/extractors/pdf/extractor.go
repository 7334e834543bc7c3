// Package pdf extracts text from PDF documents using an ordered list of
// strategies: a pure-Go parse first, then a pdftotext subprocess for
// files the native parser cannot handle. The first strategy that yields
// non-empty text wins.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// CommandRunner executes an external command and returns its stdout.
// It exists so tests can stub the pdftotext fallback.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// strategy is one way of getting text out of PDF bytes.
type strategy struct {
	name    string
	extract func(ctx context.Context, data []byte) (string, error)
}

// Extractor handles PDF documents.
type Extractor struct {
	strategies []strategy
}

// New creates a PDF extractor with the default strategy order.
func New() *Extractor {
	return NewWithRunner(execRunner{})
}

// NewWithRunner creates a PDF extractor whose pdftotext fallback uses the
// given runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	e := &Extractor{}
	e.strategies = []strategy{
		{name: "native", extract: extractNative},
		{name: "pdftotext", extract: func(ctx context.Context, data []byte) (string, error) {
			return extractPdftotext(ctx, runner, data)
		}},
	}
	return e
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract tries each strategy in order and returns the first non-empty
// text. When every strategy fails the joined errors are returned.
func (e *Extractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	var errs []error
	for _, st := range e.strategies {
		text, err := st.extract(ctx, data)
		if err != nil {
			logger.Debug("PDF strategy %s failed for %s: %v", st.name, name, err)
			errs = append(errs, fmt.Errorf("%s: %w", st.name, err))
			continue
		}
		if strings.TrimSpace(text) != "" {
			logger.Debug("PDF strategy %s extracted %d bytes from %s", st.name, len(text), name)
			return text, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", st.name, domain.ErrNoTextExtracted))
	}
	return "", errors.Join(errs...)
}

// extractNative parses the PDF in-process.
func extractNative(_ context.Context, data []byte) (string, error) {
	reader, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var result strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		result.WriteString(text)
		result.WriteString("\n")
	}
	return result.String(), nil
}

// extractPdftotext shells out to pdftotext, which handles encodings and
// damaged cross-reference tables the native parser rejects.
func extractPdftotext(ctx context.Context, runner CommandRunner, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "mediq-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	out, err := runner.Run(ctx, "pdftotext", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("run pdftotext: %w", err)
	}
	return string(out), nil
}

// Package plaintext extracts text files, trying several character
// encodings common for Chinese medical records.
package plaintext

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
	"github.com/mediq-labs/mediq-cli/internal/core/ports/driven"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// fallbackEncodings are tried in order when the bytes are not valid
// UTF-8. GBK covers GB2312 content; GB18030 covers the rest.
var fallbackEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{name: "gbk", enc: simplifiedchinese.GBK},
	{name: "gb18030", enc: simplifiedchinese.GB18030},
}

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt"}
}

// Extract decodes the file bytes to UTF-8, attempting UTF-8 first and
// then the fallback encodings in order.
func (e *Extractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	for _, fe := range fallbackEncodings {
		out, err := fe.enc.NewDecoder().Bytes(data)
		if err != nil {
			logger.Debug("Decoding %s as %s failed: %v", name, fe.name, err)
			continue
		}
		// A decoder may substitute U+FFFD instead of failing; treat that
		// as a wrong-encoding signal and try the next one.
		if strings.ContainsRune(string(out), utf8.RuneError) {
			logger.Debug("Decoding %s as %s produced replacement runes", name, fe.name)
			continue
		}
		logger.Debug("Decoded %s as %s", name, fe.name)
		return string(out), nil
	}

	return "", fmt.Errorf("decode %s: %w", name, domain.ErrInvalidInput)
}

package extractors

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// memFile is an in-memory upload for tests.
type memFile struct {
	*bytes.Reader
	name string
}

func newMemFile(name, content string) *memFile {
	return &memFile{Reader: bytes.NewReader([]byte(content)), name: name}
}

func (f *memFile) Name() string { return f.name }

// blankExtractor always returns whitespace, regardless of input.
type blankExtractor struct{}

func (blankExtractor) SupportedExtensions() []string { return []string{".blank"} }

func (blankExtractor) Extract(_ context.Context, _ string, _ []byte) (string, error) {
	return "   \n", nil
}

func TestRegistryExtract(t *testing.T) {
	r := Defaults()

	text, err := r.Extract(context.Background(), newMemFile("张某某.txt", "主诉头晕三天"))
	require.NoError(t, err)
	assert.Equal(t, "主诉头晕三天", text)
}

func TestRegistryExtensionCaseInsensitive(t *testing.T) {
	r := Defaults()

	text, err := r.Extract(context.Background(), newMemFile("张某某.TXT", "主诉头晕三天"))
	require.NoError(t, err)
	assert.Equal(t, "主诉头晕三天", text)
}

func TestRegistryUnsupportedExtension(t *testing.T) {
	r := Defaults()

	_, err := r.Extract(context.Background(), newMemFile("张某某.xyz", "ignored"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRegistryEmptyText(t *testing.T) {
	r := NewRegistry()
	r.Register(blankExtractor{})

	_, err := r.Extract(context.Background(), newMemFile("空白.blank", "anything"))
	assert.ErrorIs(t, err, domain.ErrNoTextExtracted)
}

func TestRegistrySupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".docx", ".pdf", ".txt"}, Defaults().SupportedExtensions())
}

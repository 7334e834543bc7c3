package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// buildDocx assembles a minimal DOCX container around a document.xml body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>患者张某某</w:t></w:r><w:r><w:t>，男，45岁</w:t></w:r></w:p>
    <w:p><w:r><w:t>入院诊断：头晕待查</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), "记录.docx", buildDocx(t, sampleDocument))
	require.NoError(t, err)
	assert.Equal(t, "患者张某某，男，45岁\n入院诊断：头晕待查", text)
}

func TestExtractNotAZip(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), "记录.docx", []byte("plain text"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	e := New()
	_, err = e.Extract(context.Background(), "记录.docx", buf.Bytes())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".docx"}, New().SupportedExtensions())
}

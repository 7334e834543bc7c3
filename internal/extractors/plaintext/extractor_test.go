package plaintext

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

func TestExtractUTF8(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), "记录.txt", []byte("患者张某某，主诉头晕三天"))
	require.NoError(t, err)
	assert.Equal(t, "患者张某某，主诉头晕三天", text)
}

func TestExtractGBK(t *testing.T) {
	e := New()

	const content = "患者张某某，既往海鲜过敏史"
	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)
	require.False(t, utf8.Valid(data), "GBK bytes must not already be valid UTF-8")

	text, err := e.Extract(context.Background(), "记录.txt", data)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractUndecodableBytes(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), "记录.txt", []byte{0xff, 0xff, 0xff})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".txt"}, New().SupportedExtensions())
}

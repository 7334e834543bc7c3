package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerboseGatesOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")
	Section("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	defer SetVerbose(false)

	Debug("query %q", "患者张某某")
	Info("stored %d", 2)
	Warn("skipping")
	Section("Query Pipeline")

	out := buf.String()
	assert.Contains(t, out, `[DEBUG] query "患者张某某"`)
	assert.Contains(t, out, "[INFO] stored 2")
	assert.Contains(t, out, "[WARN] skipping")
	assert.Contains(t, out, "=== Query Pipeline ===")
}

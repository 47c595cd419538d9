package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestDebug_SilentByDefault(t *testing.T) {
	buf := setup(t)
	SetVerbose(false)

	Debug("should not appear")
	assert.Empty(t, buf.String())
}

func TestDebug_VerboseEnabled(t *testing.T) {
	buf := setup(t)
	SetVerbose(true)

	Debug("charset %q routed", "utf-16")
	assert.Contains(t, buf.String(), `[DEBUG] charset "utf-16" routed`)
}

func TestInfo_VerboseEnabled(t *testing.T) {
	buf := setup(t)
	SetVerbose(true)

	Info("converted %d bytes", 42)
	assert.Contains(t, buf.String(), "[INFO] converted 42 bytes")
}

func TestIsVerbose(t *testing.T) {
	setup(t)
	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}

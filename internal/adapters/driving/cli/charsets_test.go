package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCharsetsCmd(t *testing.T, args ...string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(append([]string{"charsets"}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestCharsetsCmd_ListsBuiltins(t *testing.T) {
	out := runCharsetsCmd(t)
	assert.Contains(t, out, "windows-1252")
	assert.Contains(t, out, "iso-8859-15")
	assert.Contains(t, out, "utf-16")
}

func TestCharsetsCmd_RoutesLabels(t *testing.T) {
	out := runCharsetsCmd(t, "cp1252", "utf-16le", "iso-8859-1", "shift_jis", "x-bogus-charset")
	assert.Contains(t, out, "cp1252: windows-1252")
	assert.Contains(t, out, "utf-16le: utf-16 (little-endian)")
	assert.Contains(t, out, "iso-8859-1: windows-1252")
	assert.Contains(t, out, "shift_jis: external (converter available)")
	assert.Contains(t, out, "x-bogus-charset: external (no converter")
}

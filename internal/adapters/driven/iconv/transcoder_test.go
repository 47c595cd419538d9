package iconv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscode_ISO8859_2(t *testing.T) {
	// 0xA3 is Ł in iso-8859-2.
	text, ok := New().Transcode("iso-8859-2", []byte{0xA3})
	require.True(t, ok)
	assert.Equal(t, "Ł", text)
}

func TestTranscode_UnknownCharset(t *testing.T) {
	_, ok := New().Transcode("not-a-charset", []byte("content"))
	assert.False(t, ok)
}

func TestTranscode_EmptyInput(t *testing.T) {
	text, ok := New().Transcode("iso-8859-2", nil)
	require.True(t, ok)
	assert.Empty(t, text)
}

func TestTranscode_ChunkedInput(t *testing.T) {
	// Output larger than the internal chunk, exercising the refill loop.
	input := bytes.Repeat([]byte{0xA3}, 2000)
	text, ok := New().Transcode("iso-8859-2", input)
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("Ł", 2000), text)
}

func TestResolves(t *testing.T) {
	tr := New()
	assert.True(t, tr.Resolves("iso-8859-2"))
	assert.True(t, tr.Resolves("Shift_JIS"))
	assert.False(t, tr.Resolves("not-a-charset"))
}

package charset

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestOutputBuffer_FlushAcrossChunks(t *testing.T) {
	// Enough 3-byte runes to force several scratch flushes.
	buf := newOutputBuffer(0)
	for i := 0; i < 2000; i++ {
		buf.appendRune('€')
	}

	got := buf.string()
	assert.Equal(t, strings.Repeat("€", 2000), got)
	assert.True(t, utf8.ValidString(got))
}

func TestOutputBuffer_AllWidths(t *testing.T) {
	buf := newOutputBuffer(16)
	buf.appendRune('A')          // 1 byte
	buf.appendRune('é')          // 2 bytes
	buf.appendRune('€')          // 3 bytes
	buf.appendRune('\U0001F600') // 4 bytes
	assert.Equal(t, "Aé€\U0001F600", buf.string())
}

func TestOutputBuffer_InvalidScalarBecomesReplacement(t *testing.T) {
	buf := newOutputBuffer(0)
	buf.appendRune(0xD800)
	assert.Equal(t, "�", buf.string())
}

func TestOutputBuffer_EmptyString(t *testing.T) {
	assert.Equal(t, "", newOutputBuffer(0).string())
}

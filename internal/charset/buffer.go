package charset

import (
	"strings"
	"unicode/utf8"
)

// outputBuffer accumulates UTF-8 output through a small fixed scratch
// chunk, flushed to the builder whenever the next codepoint could
// overrun it. Codepoints that are not valid Unicode scalar values
// (unpaired surrogates, out-of-range values) encode as U+FFFD.
type outputBuffer struct {
	out     strings.Builder
	scratch [1024]byte
	n       int
}

func newOutputBuffer(sizeHint int) *outputBuffer {
	b := &outputBuffer{}
	b.out.Grow(sizeHint)
	return b
}

// appendRune encodes one codepoint into the scratch chunk. The chunk is
// flushed first unless at least utf8.UTFMax bytes of headroom remain.
func (b *outputBuffer) appendRune(r rune) {
	if b.n > len(b.scratch)-utf8.UTFMax {
		b.out.Write(b.scratch[:b.n])
		b.n = 0
	}
	b.n += utf8.EncodeRune(b.scratch[b.n:], r)
}

// string flushes any buffered bytes and returns the accumulated UTF-8.
func (b *outputBuffer) string() string {
	if b.n > 0 {
		b.out.Write(b.scratch[:b.n])
		b.n = 0
	}
	return b.out.String()
}

// Package iconv adapts the golang.org/x/text encoding registry as the
// external transcoding service. It plays the role a dynamically loaded
// iconv would in a C pipeline: a generic named-charset-to-UTF-8
// converter for everything the built-in decoders do not cover.
package iconv

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/sercha-charset/internal/core/ports/driven"
)

// Ensure Transcoder implements the interface.
var _ driven.Transcoder = (*Transcoder)(nil)

// Transcoder resolves charset labels against the IANA registry and
// decodes through the matching golang.org/x/text encoding. It is
// stateless; a fresh decoder is built per call, so concurrent calls are
// independent.
type Transcoder struct{}

// New creates an external transcoder.
func New() *Transcoder {
	return &Transcoder{}
}

// Resolves reports whether a converter exists for the label.
func (t *Transcoder) Resolves(label string) bool {
	enc, err := ianaindex.MIME.Encoding(label)
	return err == nil && enc != nil
}

// Transcode converts content from the charset named by label to UTF-8.
//
// Input is fed through the decoder in bounded chunks. On the first
// unconvertible sequence decoding stops and everything converted so far
// is returned; the remainder of the input is dropped.
func (t *Transcoder) Transcode(label string, content []byte) (string, bool) {
	enc, err := ianaindex.MIME.Encoding(label)
	if err != nil || enc == nil {
		return "", false
	}

	dec := enc.NewDecoder()
	var out strings.Builder
	out.Grow(len(content))

	var buf [1024]byte
	src := content
	for len(src) > 0 {
		nDst, nSrc, terr := dec.Transform(buf[:], src, true)
		out.Write(buf[:nDst])
		src = src[nSrc:]
		if terr != nil && terr != transform.ErrShortDst {
			// Unconvertible sequence: keep what we have, drop the rest.
			break
		}
		if nDst == 0 && nSrc == 0 {
			// No progress; stop rather than spin.
			break
		}
	}
	return out.String(), true
}

// Package driven defines the ports through which the application core
// drives external collaborators.
package driven

// Transcoder converts bytes from a named charset to UTF-8. It is the
// fallback for charsets without a built-in decoder, backed by whatever
// generic conversion service the environment provides.
type Transcoder interface {
	// Transcode converts content from the charset named by label.
	//
	// ok is false when no converter exists for the label; the caller
	// must then fall back to the original bytes. When the input holds
	// an unconvertible sequence, everything converted before it is
	// returned with ok true and the remainder is dropped.
	Transcode(label string, content []byte) (text string, ok bool)
}

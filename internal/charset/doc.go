// Package charset implements the built-in transcoders that convert
// harvested byte streams to UTF-8.
//
// The charset families that dominate harvested documents get dedicated
// decoders: UTF-16/UCS-2 (with byte-order mark and surrogate handling)
// and the single-byte windows-1252 and iso-8859-15 encodings. Classify
// maps a caller-supplied charset label to one of these decoders, to a
// no-op for labels that already mean UTF-8, or to the external
// transcoding service for everything else.
//
// Decoding is deliberately permissive: truncated or malformed input
// never produces an error, only a best-effort result. The consuming
// pipeline prefers something searchable over a rejected document.
package charset

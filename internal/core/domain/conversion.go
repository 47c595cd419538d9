package domain

// ConversionResult is the outcome of normalising a byte sequence to UTF-8.
type ConversionResult struct {
	// Changed reports whether a conversion was applied. When false the
	// caller must keep using its original bytes; Text is unspecified
	// and must be ignored.
	Changed bool

	// Text is the converted UTF-8 string. Only meaningful when Changed
	// is true. May be empty.
	Text string
}

// Unchanged returns a result telling the caller to keep its original bytes.
func Unchanged() ConversionResult {
	return ConversionResult{}
}

// Converted returns a result carrying converted UTF-8 text.
func Converted(text string) ConversionResult {
	return ConversionResult{Changed: true, Text: text}
}

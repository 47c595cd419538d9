package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnsupportedCharset indicates no converter exists for a charset
	// label. The normalisation path never surfaces it (unknown charsets
	// degrade to an unchanged result); it exists for surfaces that need
	// to report resolution failures explicitly, such as strict CLI runs.
	ErrUnsupportedCharset = errors.New("unsupported charset")
)

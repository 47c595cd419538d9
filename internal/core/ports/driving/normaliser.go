package driving

import (
	"context"

	"github.com/custodia-labs/sercha-charset/internal/core/domain"
)

// Normaliser converts raw document bytes to canonical UTF-8.
type Normaliser interface {
	// Normalise converts content from the charset named by label to
	// UTF-8. A Changed=false result means the original bytes already
	// serve as the answer; Text is unspecified in that case.
	//
	// Normalise never fails: unknown charsets and malformed input
	// degrade to an unchanged or partial result.
	Normalise(ctx context.Context, content []byte, label string) domain.ConversionResult
}

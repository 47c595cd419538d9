package services

import (
	"context"

	"github.com/custodia-labs/sercha-charset/internal/charset"
	"github.com/custodia-labs/sercha-charset/internal/core/domain"
	"github.com/custodia-labs/sercha-charset/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-charset/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-charset/internal/logger"
)

// Ensure NormaliserService implements the interface.
var _ driving.Normaliser = (*NormaliserService)(nil)

// NormaliserService converts harvested byte streams to canonical UTF-8.
// The UTF-16/UCS-2, windows-1252/iso-8859-1 and iso-8859-15 families are
// decoded with built-in transcoders; all other charsets go through the
// external transcoder when one is configured.
type NormaliserService struct {
	external driven.Transcoder
}

// NewNormaliserService creates a normaliser. external may be nil, in
// which case charsets without a built-in decoder pass through unchanged.
func NewNormaliserService(external driven.Transcoder) *NormaliserService {
	return &NormaliserService{
		external: external,
	}
}

// Normalise converts content from the charset named by label to UTF-8.
//
// The result is materialised separately from content and only handed
// over once conversion is complete, so callers may reuse the storage
// backing content for the result.
func (s *NormaliserService) Normalise(_ context.Context, content []byte, label string) domain.ConversionResult {
	route, order := charset.Classify(label)
	logger.Debug("charset %q routed to %s", label, route)

	switch route {
	case charset.RouteUTF16:
		text, ok := charset.DecodeUTF16(content, order)
		if !ok {
			return domain.Unchanged()
		}
		return domain.Converted(text)

	case charset.RouteWindows1252:
		return domain.Converted(charset.DecodeWindows1252(content))

	case charset.RouteISO8859_15:
		return domain.Converted(charset.DecodeISO8859_15(content))

	case charset.RouteExternal:
		if s.external == nil {
			return domain.Unchanged()
		}
		text, ok := s.external.Transcode(label, content)
		if !ok {
			logger.Debug("no converter for charset %q, keeping raw bytes", label)
			return domain.Unchanged()
		}
		return domain.Converted(text)
	}

	// RouteUTF8: the bytes already serve as output, untouched.
	return domain.Unchanged()
}

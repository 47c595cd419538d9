package charset

import "strings"

// Route identifies which transcoder handles a charset label.
type Route int

const (
	// RouteUTF8 means the input already serves as output; no conversion
	// is applied and no byte is inspected.
	RouteUTF8 Route = iota

	// RouteUTF16 selects the built-in UTF-16/UCS-2 decoder.
	RouteUTF16

	// RouteWindows1252 selects the windows-1252 table decoder. It also
	// serves iso-8859-1 labels: the two differ only in bytes 128-159,
	// and iso-8859-1 content is very often really windows-1252.
	RouteWindows1252

	// RouteISO8859_15 selects the iso-8859-15 table decoder.
	RouteISO8859_15

	// RouteExternal sends the input to the external transcoding service.
	RouteExternal
)

// String returns the route name for logs and CLI output.
func (r Route) String() string {
	switch r {
	case RouteUTF8:
		return "utf-8"
	case RouteUTF16:
		return "utf-16"
	case RouteWindows1252:
		return "windows-1252"
	case RouteISO8859_15:
		return "iso-8859-15"
	case RouteExternal:
		return "external"
	}
	return "unknown"
}

// ByteOrder is the endianness hint carried by a UTF-16/UCS-2 label.
type ByteOrder int

const (
	// ByteOrderUnspecified defers to the byte-order mark, defaulting to
	// big-endian when none is present.
	ByteOrderUnspecified ByteOrder = iota

	// ByteOrderBig is an explicit big-endian label suffix.
	ByteOrderBig

	// ByteOrderLittle is an explicit little-endian label suffix.
	ByteOrderLittle
)

// Classify maps a charset label to the transcoder that handles it.
//
// Matching is case-insensitive and tolerates one "-", "_" or " " between
// a family name and its numbers, so "UTF-16", "utf_16" and "UTF 16" are
// equivalent, as are "windows-1252" and "cp1252". Unknown labels route
// to the external service rather than failing.
func Classify(label string) (Route, ByteOrder) {
	// Shortcut if it's already UTF-8. An empty label means nobody knows
	// the charset, so do as little work as possible.
	if label == "" ||
		strings.EqualFold(label, "utf-8") ||
		strings.EqualFold(label, "utf8") ||
		strings.EqualFold(label, "us-ascii") {
		return RouteUTF8, ByteOrderUnspecified
	}

	if rest, ok := cutPrefixFold(label, "utf"); ok {
		rest, ok = strings.CutPrefix(skipSeparator(rest), "16")
		if !ok {
			return RouteExternal, ByteOrderUnspecified
		}
		return classifyUTF16Suffix(rest)
	}
	if rest, ok := cutPrefixFold(label, "ucs"); ok {
		rest, ok = strings.CutPrefix(skipSeparator(rest), "2")
		if !ok {
			return RouteExternal, ByteOrderUnspecified
		}
		return classifyUTF16Suffix(rest)
	}

	if rest, ok := cutPrefixFold(label, "windows"); ok {
		return classify1252(rest), ByteOrderUnspecified
	}
	if rest, ok := cutPrefixFold(label, "cp"); ok {
		return classify1252(rest), ByteOrderUnspecified
	}

	// The iso prefix is optional: bare "8859-1" labels occur in the wild.
	rest := label
	if r, ok := cutPrefixFold(rest, "iso"); ok {
		rest = skipSeparator(r)
	}
	rest, ok := strings.CutPrefix(rest, "8859")
	if !ok {
		return RouteExternal, ByteOrderUnspecified
	}
	rest, ok = strings.CutPrefix(skipSeparator(rest), "1")
	if !ok {
		return RouteExternal, ByteOrderUnspecified
	}
	switch rest {
	case "":
		// Treat iso-8859-1 as windows-1252, see RouteWindows1252.
		return RouteWindows1252, ByteOrderUnspecified
	case "5":
		return RouteISO8859_15, ByteOrderUnspecified
	}
	return RouteExternal, ByteOrderUnspecified
}

// classifyUTF16Suffix inspects what follows the "16" of a utf-16 label
// (or the "2" of a ucs-2 label). Only an empty suffix or an explicit
// endianness is a UTF-16 family label; anything else goes external.
func classifyUTF16Suffix(rest string) (Route, ByteOrder) {
	switch {
	case rest == "":
		return RouteUTF16, ByteOrderUnspecified
	case strings.EqualFold(rest, "be"):
		return RouteUTF16, ByteOrderBig
	case strings.EqualFold(rest, "le"):
		return RouteUTF16, ByteOrderLittle
	}
	return RouteExternal, ByteOrderUnspecified
}

// classify1252 matches the numeric part of a "windows" or "cp" label.
func classify1252(rest string) Route {
	if skipSeparator(rest) == "1252" {
		return RouteWindows1252
	}
	return RouteExternal
}

// cutPrefixFold is strings.CutPrefix with case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return "", false
}

// skipSeparator drops one optional "-", "_" or " ".
func skipSeparator(s string) string {
	if s != "" && (s[0] == '-' || s[0] == '_' || s[0] == ' ') {
		return s[1:]
	}
	return s
}

package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// Decode decodes percent-escapes of s.
// A "%" that is not followed by two hexadecimal digits results in [ErrMalformedEscape].
func Decode[T constraints.Byteseq](s T) (T, error) {
	return errtrace.Wrap2(grammar.Unescape(s))
}

// Encode percent-encodes every byte of s for which shouldEscape returns true,
// existing escapes are kept. A nil shouldEscape encodes everything except
// unreserved characters.
func Encode[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	return grammar.Escape(s, shouldEscape)
}

// EncodePath percent-encodes bytes of s that are not allowed in a path.
func EncodePath(s string) string { return grammar.Escape(s, shouldEscapePathChar) }

// EncodeQueryComponent percent-encodes bytes of s that are not allowed in
// a query key or value.
func EncodeQueryComponent(s string) string { return grammar.Escape(s, shouldEscapeQueryPairChar) }

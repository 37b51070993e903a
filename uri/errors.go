package uri

import (
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

type Error = errorutil.Error

const (
	// ErrMalformedInput is returned when the input does not conform to the URI grammar.
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrMalformedEscape is returned when a "%" is not followed by two hexadecimal digits.
	ErrMalformedEscape = grammar.ErrMalformedEscape
	// ErrMalformedQuery is returned when the query can't be split into key/value pairs.
	ErrMalformedQuery = grammar.ErrMalformedQuery
	// ErrInvalidPort is returned when the port is not a valid 16-bit number.
	ErrInvalidPort Error = "invalid port"
	// ErrInvalidURI is returned when an operation requires a valid URI.
	ErrInvalidURI Error = "invalid URI"
	// ErrInvalidArgument is returned when an invalid argument is provided.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

// ParseError describes where the input stopped conforming to the URI grammar.
// It matches [ErrMalformedInput] with [errors.Is].
type ParseError = grammar.ParseError

// IsGrammarErr reports whether err is caused by input that does not conform
// to the URI grammar.
func IsGrammarErr(err error) bool { return errorutil.IsGrammarErr(err) }

func newInvalidPortErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidPort, args...) //errtrace:skip
}

func newInvalidURIErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidURI, args...) //errtrace:skip
}

// Package grammar implements the RFC 3986 generic URI syntax:
// the component parser, character classes, percent-encoding and
// the query key/value grammar.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/errorutil"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrMalformedInput  Error = "malformed input"
	ErrMalformedEscape Error = "malformed percent-escape"
	ErrMalformedQuery  Error = "malformed query"
)

// ParseError describes where the input stopped conforming to the URI grammar.
type ParseError struct {
	// Offset is the approximate byte offset of the offending character.
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s at offset %d: %s", ErrMalformedInput, e.Offset, e.Reason)
}

func (*ParseError) Unwrap() error { return ErrMalformedInput }

func (*ParseError) Grammar() bool { return true }

func newMalformedEscapeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedEscape, args...) //errtrace:skip
}

func newMalformedQueryErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedQuery, args...) //errtrace:skip
}

// IsScheme reports whether s matches the scheme rule:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := schemeRule([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

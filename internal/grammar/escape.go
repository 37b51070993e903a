package grammar

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
)

// Unescape decodes each "%" HEXDIG HEXDIG triple of s into the byte it encodes.
// All other bytes are copied unchanged.
//
// A "%" that is not followed by two hexadecimal digits results in [ErrMalformedEscape].
func Unescape[T constraints.Byteseq](s T) (T, error) {
	i := 0
	for i < len(s) && s[i] != '%' {
		i++
	}
	if i == len(s) {
		return s, nil
	}

	b := make([]byte, 0, len(s))
	for i = 0; i < len(s); i++ {
		if s[i] != '%' {
			b = append(b, s[i])
			continue
		}
		if i+2 >= len(s) || !IsHexDig(s[i+1]) || !IsHexDig(s[i+2]) {
			var zero T
			return zero, errtrace.Wrap(newMalformedEscapeErr("offset %d", i))
		}
		b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
		i += 2
	}
	return T(b), nil
}

// Escape replaces each byte matched by shouldEscape with its "%" HEXDIG HEXDIG form.
// Well-formed escapes already present in s are kept as is.
// A nil shouldEscape escapes everything except unreserved characters.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreserved(c) }
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHexDig(s[i+1]) && IsHexDig(s[i+2]):
			b = append(b, s[i], s[i+1], s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b = append(b, '%', upperhex[s[i]>>4], upperhex[s[i]&15])
		default:
			b = append(b, s[i])
		}
	}
	return T(b)
}

const upperhex = "0123456789ABCDEF"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

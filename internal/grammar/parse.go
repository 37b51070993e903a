package grammar

import (
	"fmt"
	"net/netip"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
)

// Parse splits s into URI components according to the RFC 3986 URI-reference rule.
//
// The whole input must be consumed, there is no partial result.
// Empty input is a valid relative reference with an empty path.
// On failure a [*ParseError] is returned, it matches [ErrMalformedInput] with [errors.Is].
func Parse[T constraints.Byteseq](s T) (Parts, error) {
	p := parser{s: string(s)}
	if err := p.parse(); err != nil {
		return Parts{}, errtrace.Wrap(err)
	}
	return p.parts, nil
}

type parser struct {
	s     string
	pos   int
	parts Parts
}

func (p *parser) fail(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Reason: fmt.Sprintf(format, args...)} //errtrace:skip
}

func (p *parser) parse() error {
	p.parseScheme()

	if strings.HasPrefix(p.s[p.pos:], "//") {
		p.pos += 2
		if err := p.parseAuthority(); err != nil {
			return err //errtrace:skip
		}
	}

	if err := p.parsePath(); err != nil {
		return err //errtrace:skip
	}

	if p.pos < len(p.s) && p.s[p.pos] == '?' {
		p.pos++
		start := p.pos
		if err := p.scan(p.indexAny("#"), IsQueryChar, "query"); err != nil {
			return err //errtrace:skip
		}
		p.parts.Query = NewRange(start, p.pos)
	}

	if p.pos < len(p.s) && p.s[p.pos] == '#' {
		p.pos++
		start := p.pos
		if err := p.scan(len(p.s), IsQueryChar, "fragment"); err != nil {
			return err //errtrace:skip
		}
		p.parts.Fragment = NewRange(start, p.pos)
	}

	if p.pos != len(p.s) {
		return p.fail("unexpected character %q", p.s[p.pos])
	}
	return nil
}

// parseScheme consumes "scheme:" when the input starts with one.
// Otherwise the input is a relative reference and the scheme stays absent.
func (p *parser) parseScheme() {
	if len(p.s) == 0 || !IsAlpha(p.s[0]) {
		return
	}
	i := 1
	for i < len(p.s) && IsSchemeChar(p.s[i]) {
		i++
	}
	if i < len(p.s) && p.s[i] == ':' {
		p.parts.Scheme = NewRange(0, i)
		p.pos = i + 1
	}
}

// parseAuthority consumes [ userinfo "@" ] host [ ":" port ].
// The authority ends at the first "/", "?", "#" or at the end of input.
func (p *parser) parseAuthority() error {
	start := p.pos
	end := p.indexAny("/?#")

	if at := strings.LastIndexByte(p.s[start:end], '@'); at >= 0 {
		uiEnd := start + at
		if err := p.scan(uiEnd, IsUserInfoChar, "user-info"); err != nil {
			return err //errtrace:skip
		}
		p.parts.UserInfo = NewRange(start, uiEnd)
		p.pos = uiEnd + 1
	}

	hostStart := p.pos
	if p.pos < end && p.s[p.pos] == '[' {
		cls := strings.IndexByte(p.s[p.pos:end], ']')
		if cls < 0 {
			return p.fail("unterminated IP literal")
		}
		if err := p.parseIPLiteral(p.pos+cls); err != nil {
			return err //errtrace:skip
		}
	} else {
		hostEnd := end
		if i := strings.IndexByte(p.s[p.pos:end], ':'); i >= 0 {
			hostEnd = p.pos + i
		}
		if err := p.scan(hostEnd, IsRegNameChar, "host"); err != nil {
			return err //errtrace:skip
		}
	}
	p.parts.Host = NewRange(hostStart, p.pos)

	if p.pos == end {
		return nil
	}
	if p.s[p.pos] != ':' {
		return p.fail("unexpected character %q after host", p.s[p.pos])
	}
	p.pos++
	portStart := p.pos
	for p.pos < end {
		if !IsDigit(p.s[p.pos]) {
			return p.fail("invalid character %q in port", p.s[p.pos])
		}
		p.pos++
	}
	p.parts.Port = NewRange(portStart, end)
	return nil
}

// parseIPLiteral consumes "[" ( IPv6address / IPvFuture ) "]" where cls is the offset of "]".
func (p *parser) parseIPLiteral(cls int) error {
	p.pos++ // [
	lit := p.s[p.pos:cls]
	if len(lit) > 0 && (lit[0] == 'v' || lit[0] == 'V') {
		// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
		i := 1
		for i < len(lit) && IsHexDig(lit[i]) {
			i++
		}
		if i == 1 || i == len(lit) || lit[i] != '.' || i+1 == len(lit) {
			return p.fail("malformed IPvFuture literal")
		}
		for j := i + 1; j < len(lit); j++ {
			if !isIPvFutureChar(lit[j]) {
				p.pos += j
				return p.fail("invalid character %q in IPvFuture literal", lit[j])
			}
		}
	} else {
		for j := 0; j < len(lit); j++ {
			if c := lit[j]; !IsHexDig(c) && c != ':' && c != '.' {
				p.pos += j
				return p.fail("invalid character %q in IPv6 literal", c)
			}
		}
		if addr, err := netip.ParseAddr(lit); err != nil || !addr.Is6() {
			return p.fail("malformed IPv6 literal")
		}
	}
	p.pos = cls + 1
	return nil
}

// parsePath consumes the path up to "?", "#" or the end of input.
// The path is always present, possibly empty.
func (p *parser) parsePath() error {
	start := p.pos
	end := p.indexAny("?#")
	if !p.parts.Scheme.present && !p.parts.HasAuthority() {
		// path-noscheme: the first segment of a relative reference must not contain ":"
		seg := p.s[start:end]
		if i := strings.IndexByte(seg, '/'); i >= 0 {
			seg = seg[:i]
		}
		if i := strings.IndexByte(seg, ':'); i >= 0 {
			p.pos = start + i
			return p.fail("colon in first segment of relative path")
		}
	}
	if err := p.scan(end, IsPathChar, "path"); err != nil {
		return err //errtrace:skip
	}
	p.parts.Path = NewRange(start, end)
	return nil
}

// scan advances over [p.pos, end) checking every byte with ok,
// "%" must start a complete pct-encoded triple inside the same span.
func (p *parser) scan(end int, ok func(byte) bool, what string) error {
	for p.pos < end {
		c := p.s[p.pos]
		switch {
		case c == '%':
			if p.pos+2 >= end || !IsHexDig(p.s[p.pos+1]) || !IsHexDig(p.s[p.pos+2]) {
				return p.fail("malformed percent-escape in %s", what)
			}
			p.pos += 3
		case ok(c):
			p.pos++
		default:
			return p.fail("invalid character %q in %s", c, what)
		}
	}
	return nil
}

// indexAny returns the offset of the first byte from chars at or after p.pos,
// or the input length.
func (p *parser) indexAny(chars string) int {
	if i := strings.IndexAny(p.s[p.pos:], chars); i >= 0 {
		return p.pos + i
	}
	return len(p.s)
}

package uri

import (
	"net/netip"
	"strconv"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// Builder appends components to a [URI] in the order of calls.
//
// Every append re-parses the URI. The builder neither reorders nor validates
// the sequence of calls, an out-of-order call just leaves the URI invalid.
type Builder struct {
	u *URI
}

// NewBuilder returns a builder appending to u.
// If u is nil, a new empty URI with default options is used.
func NewBuilder(u *URI) *Builder {
	if u == nil {
		u = New("", nil)
	}
	return &Builder{u: u}
}

func (b *Builder) append(parts ...string) *Builder {
	s := b.u.buf
	for _, p := range parts {
		s += p
	}
	b.u.set(s)
	if !b.u.valid {
		b.u.logger().Debug("URI builder left invalid URI", "uri", b.u.buf)
	}
	return b
}

func (b *Builder) openAuthority() string {
	if b.u.valid && b.u.parts.HasAuthority() {
		return ""
	}
	return "//"
}

// Scheme appends s followed by ":", and "//" if s is a hierarchical scheme.
func (b *Builder) Scheme(s string) *Builder {
	if b.u.registry().IsHierarchical(s) {
		return b.append(s, "://")
	}
	return b.append(s, ":")
}

// UserInfo appends s followed by "@". It starts the authority with "//" if there is none yet.
func (b *Builder) UserInfo(s string) *Builder {
	return b.append(b.openAuthority(), s, "@")
}

// Host appends s. It starts the authority with "//" if there is none yet.
func (b *Builder) Host(s string) *Builder {
	return b.append(b.openAuthority(), s)
}

// HostAddr appends the IP address as a host, IPv6 addresses are enclosed in brackets.
// Zone of an IPv6 address is dropped. An invalid address appends nothing.
func (b *Builder) HostAddr(addr netip.Addr) *Builder {
	if !addr.IsValid() {
		b.u.logger().Debug("URI builder skipped invalid host address")
		return b
	}
	if addr.Is6() {
		return b.Host("[" + addr.WithZone("").String() + "]")
	}
	return b.Host(addr.String())
}

// Port appends ":" followed by s.
func (b *Builder) Port(s string) *Builder {
	return b.append(":", s)
}

// PortNumber appends ":" followed by the port number.
func (b *Builder) PortNumber(p uint16) *Builder {
	return b.Port(strconv.FormatUint(uint64(p), 10))
}

// Path appends s as is.
func (b *Builder) Path(s string) *Builder {
	return b.append(s)
}

// EncodedPath appends s with every byte that is not allowed in a path percent-encoded.
// Existing percent-escapes are kept.
func (b *Builder) EncodedPath(s string) *Builder {
	return b.append(grammar.Escape(s, shouldEscapePathChar))
}

// Query appends "?" followed by q.
func (b *Builder) Query(q string) *Builder {
	return b.append("?", q)
}

// QueryParam appends the key/value pair to the query, starting the query with "?"
// if there is none yet and separating pairs with "&" otherwise.
// Bytes of key and value that would break the pair are percent-encoded.
func (b *Builder) QueryParam(key, value string) *Builder {
	sep := "?"
	if b.u.valid && b.u.parts.Query.IsPresent() {
		sep = "&"
	}
	return b.append(sep, grammar.Escape(key, shouldEscapeQueryPairChar), "=", grammar.Escape(value, shouldEscapeQueryPairChar))
}

// Fragment appends "#" followed by s.
func (b *Builder) Fragment(s string) *Builder {
	return b.append("#", s)
}

// URI returns the URI being built.
func (b *Builder) URI() *URI { return b.u }

// FromParts builds a URI from base followed by path, query and fragment.
// An empty query or fragment is not appended.
func FromParts(base *URI, path, query, fragment string) *URI {
	b := NewBuilder(base.Clone()).Path(path)
	if query != "" {
		b.Query(query)
	}
	if fragment != "" {
		b.Fragment(fragment)
	}
	return b.URI()
}

func shouldEscapePathChar(c byte) bool { return !grammar.IsPathChar(c) }

func shouldEscapeQueryPairChar(c byte) bool {
	switch c {
	case '&', ';', '=', '+':
		return true
	}
	return !grammar.IsQueryChar(c)
}

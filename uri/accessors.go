package uri

import (
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/types"
)

// Parts returns ranges of all components, zero [Parts] for an invalid URI.
func (u *URI) Parts() Parts {
	if !u.IsValid() {
		return Parts{}
	}
	return u.parts
}

func (u *URI) Scheme() Range { return u.Parts().Scheme }

func (u *URI) UserInfo() Range { return u.Parts().UserInfo }

func (u *URI) Host() Range { return u.Parts().Host }

func (u *URI) Port() Range { return u.Parts().Port }

// Path returns the path range, it is present in every valid URI.
func (u *URI) Path() Range { return u.Parts().Path }

func (u *URI) Query() Range { return u.Parts().Query }

func (u *URI) Fragment() Range { return u.Parts().Fragment }

// Authority returns the range of "userinfo@host:port" without the leading "//".
func (u *URI) Authority() Range {
	p := u.Parts()
	if !p.HasAuthority() {
		return Range{}
	}
	start, end := p.Host.Start(), p.Host.End()
	if p.UserInfo.IsPresent() {
		start = p.UserInfo.Start()
	}
	if p.Port.IsPresent() {
		end = p.Port.End()
	}
	return grammar.NewRange(start, end)
}

// HierPart returns the range from the start of the authority (or of the path
// if there is no authority) to the end of the path.
func (u *URI) HierPart() Range {
	if !u.IsValid() {
		return Range{}
	}
	if a := u.Authority(); a.IsPresent() {
		return grammar.NewRange(a.Start(), u.parts.Path.End())
	}
	return u.parts.Path
}

// Text returns the text of the range r, an empty string for an absent range.
func (u *URI) Text(r Range) string {
	if u == nil {
		return ""
	}
	return r.Slice(u.buf)
}

// Decoded returns the text of the range r with percent-escapes decoded.
func (u *URI) Decoded(r Range) (string, error) {
	return errtrace.Wrap2(grammar.Unescape(u.Text(r)))
}

func (u *URI) SchemeText() string { return u.Text(u.Scheme()) }

func (u *URI) UserInfoText() string { return u.Text(u.UserInfo()) }

func (u *URI) HostText() string { return u.Text(u.Host()) }

func (u *URI) PortText() string { return u.Text(u.Port()) }

func (u *URI) PathText() string { return u.Text(u.Path()) }

func (u *URI) QueryText() string { return u.Text(u.Query()) }

func (u *URI) FragmentText() string { return u.Text(u.Fragment()) }

func (u *URI) AuthorityText() string { return u.Text(u.Authority()) }

// schemeName returns the lower-cased scheme, registry lookups use it.
func (u *URI) schemeName() string { return NormalizeScheme(u.SchemeText()) }

// PortNumber returns the port as a number.
// An absent or empty port yields (0, false, nil),
// a port that does not fit into 16 bits yields [ErrInvalidPort].
func (u *URI) PortNumber() (uint16, bool, error) {
	s := u.PortText()
	if s == "" {
		return 0, false, nil
	}
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false, errtrace.Wrap(newInvalidPortErr("port %q out of range", s))
	}
	return uint16(p), true, nil
}

// Username returns the part of the user-info before the first ":".
func (u *URI) Username() string {
	ui := u.UserInfoText()
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		return ui[:i]
	}
	return ui
}

// Password returns the part of the user-info after the first ":".
func (u *URI) Password() (string, bool) {
	ui := u.UserInfoText()
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		return ui[i+1:], true
	}
	return "", false
}

// IsAbsolute reports whether the URI has a scheme.
func (u *URI) IsAbsolute() bool { return u.Scheme().IsPresent() }

// IsRelative reports whether the URI is a valid relative reference.
func (u *URI) IsRelative() bool { return u.IsValid() && !u.parts.Scheme.IsPresent() }

// IsOpaque reports whether the scheme of the URI is registered as opaque.
func (u *URI) IsOpaque() bool {
	return u.IsAbsolute() && u.registry().IsOpaque(u.schemeName())
}

// IsHierarchical reports whether the URI has an authority
// or its scheme is registered as hierarchical.
func (u *URI) IsHierarchical() bool {
	if !u.IsValid() {
		return false
	}
	return u.parts.HasAuthority() || (u.IsAbsolute() && u.registry().IsHierarchical(u.schemeName()))
}

// Values is a decoded multi-valued query map.
type Values = types.Values

// QueryMap splits the query into decoded key/value pairs.
//
// Pairs are separated with "&" or ";". A key starts with a letter or "_",
// keys and values may contain letters, digits, "_", "/" and percent-escapes.
// An absent or empty query yields an empty map, a query that does not match
// these rules yields [ErrMalformedQuery].
func (u *URI) QueryMap() (Values, error) {
	pairs, err := grammar.ParseQueryPairs(u.QueryText())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	vals := make(Values, len(pairs))
	for _, p := range pairs {
		k, err := grammar.Unescape(p.Key)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		v, err := grammar.Unescape(p.Value)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		vals.Append(k, v)
	}
	return vals, nil
}

// HostKind classifies the host component.
type HostKind uint8

const (
	HostNone HostKind = iota
	HostIPv4
	HostIPv6
	HostIPFuture
	HostDomain
	HostRegName
)

func (k HostKind) String() string {
	switch k {
	case HostNone:
		return "none"
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	case HostIPFuture:
		return "IPvFuture"
	case HostDomain:
		return "domain"
	case HostRegName:
		return "reg-name"
	default:
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// HostKind returns the kind of the host.
// A reg-name that is a syntactically valid DNS name is reported as [HostDomain].
func (u *URI) HostKind() HostKind {
	if !u.Host().IsPresent() {
		return HostNone
	}

	h := u.HostText()
	switch {
	case strings.HasPrefix(h, "[v"), strings.HasPrefix(h, "[V"):
		return HostIPFuture
	case strings.HasPrefix(h, "["):
		return HostIPv6
	}
	if addr, err := netip.ParseAddr(h); err == nil && addr.Is4() {
		return HostIPv4
	}
	if h != "" && !strings.ContainsRune(h, '%') {
		if _, ok := dns.IsDomainName(h); ok {
			return HostDomain
		}
	}
	return HostRegName
}

// HostAddr returns the host as an IP address if it is an IPv4 or IPv6 literal.
func (u *URI) HostAddr() (netip.Addr, bool) {
	h := u.HostText()
	switch u.HostKind() {
	case HostIPv4:
		addr, err := netip.ParseAddr(h)
		return addr, err == nil
	case HostIPv6:
		addr, err := netip.ParseAddr(h[1 : len(h)-1])
		return addr, err == nil
	default:
		return netip.Addr{}, false
	}
}

package uri

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// Equal reports whether u and val are equivalent URIs.
// The val can be URI, *URI or string, any other type is never equal.
// A string is parsed with the registry and logger of u.
//
// Both URIs must be valid. They are compared after [Normalize]:
// scheme, user-info, host, port, path and fragment must match byte by byte,
// absent and empty components differ. Queries are compared as multisets of
// decoded key/value pairs, so the order of pairs does not matter.
// A query that can't be split into pairs is compared byte by byte.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	case string:
		if u == nil {
			return false
		}
		other = New(v, &Options{Registry: u.reg, Log: u.log})
	default:
		return false
	}

	if !u.IsValid() || !other.IsValid() {
		return false
	}
	if u == other {
		return true
	}

	n1, n2 := Normalize(u), Normalize(other)
	p1, p2 := n1.parts, n2.parts
	for _, rs := range [...][2]Range{
		{p1.Scheme, p2.Scheme},
		{p1.UserInfo, p2.UserInfo},
		{p1.Host, p2.Host},
		{p1.Port, p2.Port},
		{p1.Path, p2.Path},
		{p1.Fragment, p2.Fragment},
	} {
		if rs[0].IsPresent() != rs[1].IsPresent() || n1.Text(rs[0]) != n2.Text(rs[1]) {
			return false
		}
	}
	return n1.queryEqual(n2)
}

func (u *URI) queryEqual(other *URI) bool {
	q1, q2 := u.parts.Query, other.parts.Query
	if q1.IsPresent() != q2.IsPresent() {
		return false
	}
	if u.Text(q1) == other.Text(q2) {
		return true
	}
	m1, err := u.QueryMap()
	if err != nil {
		return false
	}
	m2, err := other.QueryMap()
	if err != nil {
		return false
	}
	return m1.Equal(m2)
}

// Hash returns a hash of the URI consistent with [URI.Equal]:
// equal URIs have equal hashes. An invalid URI hashes its raw text.
func (u *URI) Hash() uint64 {
	if u == nil {
		return 0
	}

	d := xxhash.New()
	if !u.valid {
		d.WriteString("!")   //nolint:errcheck
		d.WriteString(u.buf) //nolint:errcheck
		return d.Sum64()
	}

	n := Normalize(u)
	for _, r := range [...]Range{
		n.parts.Scheme,
		n.parts.UserInfo,
		n.parts.Host,
		n.parts.Port,
		n.parts.Path,
		n.parts.Fragment,
	} {
		writeHashPart(d, r, n.buf)
	}

	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n.queryHash())
	d.Write(b[:]) //nolint:errcheck
	return d.Sum64()
}

func writeHashPart(d *xxhash.Digest, r Range, buf string) {
	if !r.IsPresent() {
		d.Write([]byte{0}) //nolint:errcheck
		return
	}
	var b [9]byte
	b[0] = 1
	binary.BigEndian.PutUint64(b[1:], uint64(r.Len()))
	d.Write(b[:])               //nolint:errcheck
	d.WriteString(r.Slice(buf)) //nolint:errcheck
}

// queryHash sums hashes of decoded pairs, the sum does not depend on the order of pairs.
func (u *URI) queryHash() uint64 {
	q := u.parts.Query
	if !q.IsPresent() {
		return 0
	}
	pairs, err := grammar.ParseQueryPairs(u.Text(q))
	if err != nil {
		return xxhash.Sum64String("?" + u.Text(q))
	}

	sum := xxhash.Sum64String("?")
	for _, p := range pairs {
		k, err1 := grammar.Unescape(p.Key)
		v, err2 := grammar.Unescape(p.Value)
		if err1 != nil || err2 != nil {
			return xxhash.Sum64String("?" + u.Text(q))
		}
		sum += xxhash.Sum64String(k + "\x00" + v)
	}
	return sum
}

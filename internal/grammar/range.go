package grammar

import "strconv"

// Range is a half-open span [Start, End) of the buffer a URI was parsed from.
//
// A Range holds offsets only, it never references the bytes themselves,
// so it stays meaningful after the owning buffer is copied or reallocated.
// The zero Range denotes an absent component.
type Range struct {
	start, end int
	present    bool
}

// NewRange returns a present Range spanning [start, end).
func NewRange(start, end int) Range {
	if end < start {
		end = start
	}
	return Range{start: start, end: end, present: true}
}

// Start returns the offset of the first byte of the range.
func (r Range) Start() int { return r.start }

// End returns the offset just past the last byte of the range.
func (r Range) End() int { return r.end }

// Len returns the length of the range in bytes.
func (r Range) Len() int { return r.end - r.start }

// IsPresent reports whether the component was present in the parsed input.
func (r Range) IsPresent() bool { return r.present }

// IsEmpty reports whether the component is present but has zero length,
// e.g. the query of "http://host?".
func (r Range) IsEmpty() bool { return r.present && r.start == r.end }

// Slice resolves the range against s.
// An absent range or a range that does not fit into s yields an empty string.
func (r Range) Slice(s string) string {
	if !r.present || r.start < 0 || r.end > len(s) {
		return ""
	}
	return s[r.start:r.end]
}

func (r Range) String() string {
	if !r.present {
		return "<absent>"
	}
	return "[" + strconv.Itoa(r.start) + "," + strconv.Itoa(r.end) + ")"
}

// Parts is the result of a successful parse: one [Range] per URI component.
//
// If UserInfo or Port is present then Host is present too.
// Path is always present, possibly empty.
type Parts struct {
	Scheme,
	UserInfo,
	Host,
	Port,
	Path,
	Query,
	Fragment Range
}

// HasAuthority reports whether the "//" authority component is present.
func (p Parts) HasAuthority() bool { return p.Host.present }

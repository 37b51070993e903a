package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
	"github.com/ghettovoice/gouri/log"
	"github.com/ghettovoice/gouri/scheme"
)

// Range is a half-open span of the URI buffer, see [grammar.Range].
type Range = grammar.Range

// Parts holds one [Range] per URI component.
type Parts = grammar.Parts

// URI is a URI reference together with the ranges of its components.
//
// The zero value is an empty invalid URI, use [New], [Parse] or [Builder] to get a valid one.
type URI struct {
	buf   string
	parts Parts
	valid bool
	err   error
	reg   scheme.Registry
	log   *slog.Logger
}

// New creates a URI from s. It never fails, check [URI.IsValid] or [URI.Err]
// to find out whether s conforms to the URI grammar.
// Options are optional, default options are used if nil (see [Options]).
func New[T constraints.Byteseq](s T, opts *Options) *URI {
	u := &URI{
		reg: opts.registry(),
		log: opts.log(),
	}
	u.set(string(s))
	return u
}

// Parse parses s into a URI with default options.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	u := New(s, nil)
	if u.err != nil {
		return nil, errtrace.Wrap(u.err)
	}
	return u, nil
}

// MustParse is like [Parse] but panics if s is not a valid URI.
func MustParse[T constraints.Byteseq](s T) *URI {
	return util.Must2(Parse(s))
}

func (u *URI) registry() scheme.Registry {
	if u.reg == nil {
		return scheme.Default()
	}
	return u.reg
}

func (u *URI) logger() *slog.Logger {
	if u.log == nil {
		return log.Default()
	}
	return u.log
}

func (u *URI) set(s string) {
	u.buf = s
	parts, err := grammar.Parse(s)
	if err != nil {
		u.parts = Parts{}
		u.valid = false
		u.err = errtrace.Wrap(err)
		u.logger().Debug("URI parse failed", "uri", s, "error", err)
		return
	}
	u.parts = parts
	u.valid = true
	u.err = nil
}

// Set replaces the URI text with s and re-parses it.
// The returned error is the same as [URI.Err].
func (u *URI) Set(s string) error {
	u.set(s)
	return errtrace.Wrap(u.err)
}

// IsValid reports whether the URI text conforms to the URI grammar.
func (u *URI) IsValid() bool { return u != nil && u.valid }

// Err returns the error of the last parse, nil for a valid URI.
// The zero URI returns [ErrInvalidURI].
func (u *URI) Err() error {
	switch {
	case u == nil:
		return newInvalidURIErr("nil URI") //errtrace:skip
	case u.valid:
		return nil
	case u.err == nil:
		return newInvalidURIErr("empty URI") //errtrace:skip
	default:
		return u.err //errtrace:skip
	}
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// String returns the URI text as it was given, invalid text included.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.buf
}

// Bytes returns a copy of the URI text.
func (u *URI) Bytes() []byte { return []byte(u.String()) }

// RenderTo writes the URI text to w.
func (u *URI) RenderTo(w io.Writer) (int, error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, u.buf))
}

// Format implements [fmt.Formatter].
//
// Verbs %s and %v print the URI text, %q prints it quoted,
// %+v additionally lists ranges of the components.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	case 'v':
		if f.Flag('+') {
			fmt.Fprint(f, u.debugString())
			return
		}
		fmt.Fprint(f, u.String())
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

func (u *URI) debugString() string {
	if u == nil {
		return "<nil>"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(strconv.Quote(u.buf))
	if !u.valid {
		fmt.Fprintf(sb, " invalid: %v", u.Err())
		return sb.String()
	}
	for _, c := range []struct {
		name string
		rng  Range
	}{
		{"scheme", u.parts.Scheme},
		{"user_info", u.parts.UserInfo},
		{"host", u.parts.Host},
		{"port", u.parts.Port},
		{"path", u.parts.Path},
		{"query", u.parts.Query},
		{"fragment", u.parts.Fragment},
	} {
		if !c.rng.IsPresent() {
			continue
		}
		fmt.Fprintf(sb, " %s=%s%q", c.name, c.rng, c.rng.Slice(u.buf))
	}
	return sb.String()
}

// Compare compares URI texts lexicographically,
// a nil URI orders before any other.
func (u *URI) Compare(other *URI) int {
	switch {
	case u == other:
		return 0
	case u == nil:
		return -1
	case other == nil:
		return 1
	}
	return strings.Compare(u.buf, other.buf)
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The URI keeps the text even if it is invalid, the parse error is returned.
func (u *URI) UnmarshalText(text []byte) error {
	return errtrace.Wrap(u.Set(string(text)))
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.StringValue("<nil>")
	}
	if !u.valid {
		return slog.GroupValue(
			slog.String("text", u.buf),
			slog.Any("error", u.Err()),
		)
	}
	return slog.StringValue(u.buf)
}

// Package scheme classifies URI scheme names.
//
// A scheme is either opaque (e.g. "mailto", "urn"), so its content after the colon
// is never parsed as "//" authority and path, or hierarchical (e.g. "http", "ftp").
// Hierarchical schemes may have a well-known default port.
// Unknown schemes are neither opaque nor hierarchical.
package scheme

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/schememock/registry_mock.go -package=schememock . Registry

import (
	"maps"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// Registry answers scheme classification queries.
// Implementations must treat scheme names case-insensitively.
type Registry interface {
	IsOpaque(name string) bool
	IsHierarchical(name string) bool
	// DefaultPort returns the registered default port of the scheme.
	DefaultPort(name string) (uint16, bool)
}

// Kind is the classification of a scheme.
type Kind uint8

const (
	Unknown Kind = iota
	Hierarchical
	Opaque
)

func (k Kind) String() string {
	switch k {
	case Hierarchical:
		return "hierarchical"
	case Opaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Entry describes a single scheme in a [Table].
type Entry struct {
	Name string
	Kind Kind
	// Port is the default port, zero means no default port.
	Port uint16
}

// Table is a static [Registry] built from a list of entries.
// It is immutable after creation and safe for concurrent use.
type Table struct {
	entries map[string]Entry
}

// NewTable builds a table from entries.
// Names must match the scheme grammar, they are stored lower-cased.
// A duplicate name replaces the earlier entry.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if !grammar.IsScheme(e.Name) {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid scheme name %q", e.Name))
		}
		if e.Kind == Opaque && e.Port != 0 {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("opaque scheme %q with default port %d", e.Name, e.Port))
		}
		e.Name = util.LCase(e.Name)
		t.entries[e.Name] = e
	}
	return t, nil
}

// MustNewTable is like [NewTable] but panics on error.
func MustNewTable(entries ...Entry) *Table {
	return util.Must2(NewTable(entries...))
}

func (t *Table) lookup(name string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[util.LCase(name)]
	return e, ok
}

// Kind returns the classification of the scheme.
func (t *Table) Kind(name string) Kind {
	e, _ := t.lookup(name)
	return e.Kind
}

func (t *Table) IsOpaque(name string) bool { return t.Kind(name) == Opaque }

func (t *Table) IsHierarchical(name string) bool { return t.Kind(name) == Hierarchical }

func (t *Table) DefaultPort(name string) (uint16, bool) {
	e, ok := t.lookup(name)
	if !ok || e.Port == 0 {
		return 0, false
	}
	return e.Port, true
}

// Names returns sorted names of all registered schemes.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

var defTable = MustNewTable(
	Entry{Name: "http", Kind: Hierarchical, Port: 80},
	Entry{Name: "https", Kind: Hierarchical, Port: 443},
	Entry{Name: "ws", Kind: Hierarchical, Port: 80},
	Entry{Name: "wss", Kind: Hierarchical, Port: 443},
	Entry{Name: "ftp", Kind: Hierarchical, Port: 21},
	Entry{Name: "sftp", Kind: Hierarchical, Port: 22},
	Entry{Name: "ssh", Kind: Hierarchical, Port: 22},
	Entry{Name: "telnet", Kind: Hierarchical, Port: 23},
	Entry{Name: "gopher", Kind: Hierarchical, Port: 70},
	Entry{Name: "nntp", Kind: Hierarchical, Port: 119},
	Entry{Name: "imap", Kind: Hierarchical, Port: 143},
	Entry{Name: "pop", Kind: Hierarchical, Port: 110},
	Entry{Name: "ldap", Kind: Hierarchical, Port: 389},
	Entry{Name: "ldaps", Kind: Hierarchical, Port: 636},
	Entry{Name: "rtsp", Kind: Hierarchical, Port: 554},
	Entry{Name: "git", Kind: Hierarchical, Port: 9418},
	Entry{Name: "svn", Kind: Hierarchical, Port: 3690},
	Entry{Name: "file", Kind: Hierarchical},
	Entry{Name: "mailto", Kind: Opaque},
	Entry{Name: "news", Kind: Opaque},
	Entry{Name: "urn", Kind: Opaque},
	Entry{Name: "tel", Kind: Opaque},
	Entry{Name: "sip", Kind: Opaque},
	Entry{Name: "sips", Kind: Opaque},
	Entry{Name: "sms", Kind: Opaque},
	Entry{Name: "im", Kind: Opaque},
	Entry{Name: "xmpp", Kind: Opaque},
	Entry{Name: "data", Kind: Opaque},
	Entry{Name: "javascript", Kind: Opaque},
	Entry{Name: "about", Kind: Opaque},
)

// Default returns the built-in table of well-known schemes.
func Default() *Table { return defTable }

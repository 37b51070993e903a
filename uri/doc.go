// Package uri implements parsing, validation, normalization and comparison
// of generic Uniform Resource Identifiers according to RFC 3986.
//
// # Overview
//
// A [URI] owns a text buffer and the [Parts] the buffer was split into.
// Every component is exposed as a [Range], a pair of byte offsets into the buffer,
// so reading a component never allocates:
//
//	u, err := uri.Parse("https://user@Example.COM:443/a/./b/../c?x=1&y=2#top")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u.Scheme()     // [0,5)
//	u.HostText()   // "Example.COM"
//	u.Text(u.Path()) // "/a/./b/../c"
//
// A component can be absent (u.Query().IsPresent() == false) or present and empty,
// "http://host?" has an empty query while "http://host" has none.
//
// Every mutation, whether [URI.Set] or a [Builder] append, re-parses the whole buffer.
// An input that does not conform to the grammar leaves the URI invalid:
// [URI.IsValid] reports false, [URI.Err] returns the parse error
// and every range accessor returns an absent range.
//
// # Normalization and equivalence
//
// [Normalize] produces the canonical form of a URI: scheme and host are lower-cased,
// the default port of the scheme is dropped, dot-segments are removed from the path
// and a trailing slash is added to a path whose last segment has no extension.
// Two URIs are equal ([URI.Equal]) when their normalized components match,
// the query being compared as an unordered multiset of decoded key/value pairs.
// [URI.Hash] is consistent with [URI.Equal].
//
// # Building
//
// [Builder] appends components in the order of calls:
//
//	u := uri.NewBuilder(nil).
//	    Scheme("http").
//	    Host("example.com").
//	    Path("/a").
//	    QueryParam("k", "v").
//	    Fragment("top").
//	    URI()
//	// http://example.com/a?k=v#top
//
// # Schemes
//
// Whether a scheme is opaque or hierarchical and which port is its default one
// is answered by a [scheme.Registry], [scheme.Default] is used unless another one
// is passed with [Options].
//
// # Thread Safety
//
// A URI is not safe for concurrent modification. Concurrent reads of a URI
// that is not modified are safe.
package uri

package uri

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ghettovoice/gouri/internal/util"
	"github.com/ghettovoice/gouri/log"
	"github.com/ghettovoice/gouri/scheme"
)

// Normalize returns the normalized copy of u:
//   - scheme and host are lower-cased;
//   - an empty port and the default port of the scheme are removed;
//   - dot-segments are removed from the path, an empty path becomes "/",
//     a trailing "/" is added when the last segment is not empty and has no ".";
//   - user-info, query and fragment are kept as is.
//
// Paths of opaque schemes are kept as is. Absent components stay absent.
// An invalid URI is returned as a copy. Normalize is idempotent.
//
// The copy is assembled with [Builder] in scheme, user-info, host, port, path,
// query and fragment order.
func Normalize(u *URI) *URI {
	if !u.IsValid() {
		return u.Clone()
	}

	p := u.parts
	b := NewBuilder(&URI{reg: u.reg, log: u.log})
	b.u.set("")

	schemeName := u.schemeName()
	if p.Scheme.IsPresent() {
		// Builder.Scheme would open an authority for hierarchical schemes
		b.append(schemeName, ":")
	}
	if p.HasAuthority() {
		if p.UserInfo.IsPresent() {
			b.UserInfo(u.Text(p.UserInfo))
		}
		b.Host(NormalizeHost(u.Text(p.Host)))
		if port, ok := NormalizePort(schemeName, u.Text(p.Port), u.registry()); ok {
			b.Port(port)
		}
	}
	if u.IsOpaque() {
		b.Path(u.Text(p.Path))
	} else {
		path := normalizePath(u.Text(p.Path), u.logger())
		switch {
		case !p.HasAuthority() && strings.HasPrefix(path, "//"):
			// keep the path from being taken for an authority
			path = "/." + path
		case !p.Scheme.IsPresent() && !p.HasAuthority() && hasColonInFirstSegment(path):
			path = "./" + path
		}
		b.Path(path)
	}
	if p.Query.IsPresent() {
		b.Query(u.Text(p.Query))
	}
	if p.Fragment.IsPresent() {
		b.Fragment(u.Text(p.Fragment))
	}
	return b.URI()
}

func hasColonInFirstSegment(path string) bool {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return strings.IndexByte(path, ':') >= 0
}

// NormalizeScheme lower-cases the scheme.
func NormalizeScheme(s string) string { return util.LCase(s) }

// NormalizeHost lower-cases the host.
func NormalizeHost(s string) string { return util.LCase(s) }

// NormalizePort returns the port to keep for the scheme.
// It reports false for an empty port and for a port numerically equal
// to the default port of the scheme in reg. Other ports are returned unchanged.
// A nil reg means [scheme.Default].
func NormalizePort(schemeName, port string, reg scheme.Registry) (string, bool) {
	if port == "" {
		return "", false
	}
	if reg == nil {
		reg = scheme.Default()
	}
	if def, ok := reg.DefaultPort(schemeName); ok {
		if p, err := strconv.ParseUint(port, 10, 16); err == nil && uint16(p) == def {
			return "", false
		}
	}
	return port, true
}

// NormalizePath removes dot-segments from the path.
//
// "." segments are dropped, ".." removes the preceding segment.
// A ".." without a preceding segment is ignored, the root of an absolute path is never removed.
// The result is "/" if nothing is left. A trailing "/" is added when the last segment
// is not empty and contains no ".", so "/a/b" becomes "/a/b/" while "/a/b.html" is kept.
func NormalizePath(path string) string {
	return normalizePath(path, log.Default())
}

func normalizePath(path string, logger *slog.Logger) string {
	if path == "" {
		return "/"
	}

	segs := strings.Split(path, "/")
	out := make([]string, 0, len(segs)+1)
	// the leading empty segment of an absolute path is the root
	minLen := 0
	if path[0] == '/' {
		minLen = 1
	}
	for i, seg := range segs {
		switch {
		case i == 0 && minLen == 1:
			out = append(out, seg)
		case seg == ".":
		case seg == "..":
			if len(out) > minLen {
				out = out[:len(out)-1]
			} else {
				logger.Debug("unmatched dot-dot path segment ignored", "path", path)
			}
		default:
			out = append(out, seg)
		}
	}

	// nothing left but the root, or a single empty segment of "./" or "../"
	if len(out) <= minLen || (len(out) == 1 && out[0] == "") {
		return "/"
	}
	if last := out[len(out)-1]; last != "" && !strings.Contains(last, ".") {
		out = append(out, "")
	}
	return strings.Join(out, "/")
}

package grammar

const (
	clsAlpha uint16 = 1 << iota
	clsDigit
	clsHex
	clsUnreserved
	clsSubDelim
	clsSchemeExtra
)

var charClasses = func() (t [256]uint16) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= clsAlpha | clsUnreserved
		t[c-'a'+'A'] |= clsAlpha | clsUnreserved
	}
	for c := '0'; c <= '9'; c++ {
		t[c] |= clsDigit | clsHex | clsUnreserved
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] |= clsHex
		t[c-'a'+'A'] |= clsHex
	}
	for _, c := range "-._~" {
		t[c] |= clsUnreserved
	}
	for _, c := range "!$&'()*+,;=" {
		t[c] |= clsSubDelim
	}
	for _, c := range "+-." {
		t[c] |= clsSchemeExtra
	}
	return t
}()

func is(c byte, cls uint16) bool { return charClasses[c]&cls != 0 }

// IsAlpha checks ALPHA rule.
func IsAlpha(c byte) bool { return is(c, clsAlpha) }

// IsDigit checks DIGIT rule.
func IsDigit(c byte) bool { return is(c, clsDigit) }

// IsHexDig checks HEXDIG rule (both letter cases).
func IsHexDig(c byte) bool { return is(c, clsHex) }

// IsUnreserved checks unreserved rule.
func IsUnreserved(c byte) bool { return is(c, clsUnreserved) }

// IsSubDelim checks sub-delims rule.
func IsSubDelim(c byte) bool { return is(c, clsSubDelim) }

// IsSchemeChar checks characters allowed after the first letter of a scheme.
func IsSchemeChar(c byte) bool { return is(c, clsAlpha|clsDigit|clsSchemeExtra) }

// IsUserInfoChar checks userinfo characters except pct-encoded.
func IsUserInfoChar(c byte) bool { return is(c, clsUnreserved|clsSubDelim) || c == ':' }

// IsRegNameChar checks reg-name characters except pct-encoded.
func IsRegNameChar(c byte) bool { return is(c, clsUnreserved|clsSubDelim) }

// IsPChar checks pchar rule except pct-encoded.
func IsPChar(c byte) bool { return is(c, clsUnreserved|clsSubDelim) || c == ':' || c == '@' }

// IsPathChar checks pchar plus the segment separator.
func IsPathChar(c byte) bool { return IsPChar(c) || c == '/' }

// IsQueryChar checks query and fragment characters except pct-encoded.
func IsQueryChar(c byte) bool { return IsPChar(c) || c == '/' || c == '?' }

func isIPvFutureChar(c byte) bool { return is(c, clsUnreserved|clsSubDelim) || c == ':' }

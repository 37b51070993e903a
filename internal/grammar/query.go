package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gouri/internal/constraints"
)

// QueryPair is a single raw (still percent-encoded) key/value pair of a query.
type QueryPair struct {
	Key, Value string
	// HasValue is false for a bare key without "=".
	HasValue bool
}

// ParseQueryPairs splits a query component into raw key/value pairs.
//
// The accepted syntax is deliberately narrower than the generic query rule:
//
//	query-pairs = query-pair *( ( ";" / "&" ) query-pair )
//	query-pair  = query-key [ "=" query-value ]
//	query-key   = ( ALPHA / "_" ) *( ALPHA / DIGIT / "_" / "/" / "%" )
//	query-value = 1*( ALPHA / DIGIT / "_" / "/" / "%" )
//
// An empty query yields no pairs. Input that does not match the rule as a whole
// results in [ErrMalformedQuery].
func ParseQueryPairs[T constraints.Byteseq](s T) ([]QueryPair, error) {
	if len(s) == 0 {
		return nil, nil
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := queryPairsRule([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedQueryErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedQueryErr("unexpected character %q at offset %d", s[nl], nl))
	}

	pairNodes := n.GetNodes("query-pair")
	pairs := make([]QueryPair, 0, len(pairNodes))
	for _, pn := range pairNodes {
		var p QueryPair
		if kn, ok := pn.GetNode("query-key"); ok {
			p.Key = kn.String()
		}
		if vn, ok := pn.GetNode("query-value"); ok {
			p.Value = vn.String()
			p.HasValue = true
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

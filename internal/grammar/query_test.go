package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestParseQueryPairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    []grammar.QueryPair
		wantErr error
	}{
		{"empty", "", nil, nil},
		{"single", "a=1", []grammar.QueryPair{{"a", "1", true}}, nil},
		{
			"ampersand",
			"a=1&b=2",
			[]grammar.QueryPair{{"a", "1", true}, {"b", "2", true}},
			nil,
		},
		{
			"semicolon",
			"a=1;b=2",
			[]grammar.QueryPair{{"a", "1", true}, {"b", "2", true}},
			nil,
		},
		{
			"bare key",
			"flag&x_1=a/b",
			[]grammar.QueryPair{{"flag", "", false}, {"x_1", "a/b", true}},
			nil,
		},
		{
			"escapes",
			"na%20me=v%2Fal",
			[]grammar.QueryPair{{"na%20me", "v%2Fal", true}},
			nil,
		},
		{"underscore key", "_k=v", []grammar.QueryPair{{"_k", "v", true}}, nil},
		{"duplicates", "a=1&a=2", []grammar.QueryPair{{"a", "1", true}, {"a", "2", true}}, nil},
		{"digit key", "1=a", nil, grammar.ErrMalformedQuery},
		{"empty value", "a=", nil, grammar.ErrMalformedQuery},
		{"trailing separator", "a=1&", nil, grammar.ErrMalformedQuery},
		{"dot in value", "a=1.5", nil, grammar.ErrMalformedQuery},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.ParseQueryPairs(c.input)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("grammar.ParseQueryPairs(%q) error = %v, want %v", c.input, err, c.wantErr)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.ParseQueryPairs(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.input, got, c.want, diff)
			}
		})
	}
}

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"http", true},
		{"HTTPS", true},
		{"svn+ssh", true},
		{"a.b-c", true},
		{"1http", false},
		{"ht tp", false},
		{"http:", false},
	}

	for _, c := range cases {
		if got := grammar.IsScheme(c.in); got != c.want {
			t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

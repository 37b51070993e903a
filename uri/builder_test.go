package uri_test

import (
	"bytes"
	"log/slog"
	"net/netip"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gouri/internal/testutil/schememock"
	"github.com/ghettovoice/gouri/uri"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		build func(b *uri.Builder) *uri.Builder
		want  string
	}{
		{
			"scheme host path query fragment",
			func(b *uri.Builder) *uri.Builder {
				return b.Scheme("http").Host("example.com").Path("/a").Query("k=v").Fragment("top")
			},
			"http://example.com/a?k=v#top",
		},
		{
			"full authority",
			func(b *uri.Builder) *uri.Builder {
				return b.Scheme("http").UserInfo("user:pwd").Host("h").PortNumber(8080).Path("/")
			},
			"http://user:pwd@h:8080/",
		},
		{
			"string port",
			func(b *uri.Builder) *uri.Builder { return b.Scheme("https").Host("h").Port("8443") },
			"https://h:8443",
		},
		{
			"opaque",
			func(b *uri.Builder) *uri.Builder { return b.Scheme("mailto").Path("john@example.com") },
			"mailto:john@example.com",
		},
		{
			"unknown scheme with host",
			func(b *uri.Builder) *uri.Builder { return b.Scheme("foo").Host("h").Path("/x") },
			"foo://h/x",
		},
		{
			"network path",
			func(b *uri.Builder) *uri.Builder { return b.Host("h").Path("/x") },
			"//h/x",
		},
		{
			"ipv4 address",
			func(b *uri.Builder) *uri.Builder { return b.Scheme("http").HostAddr(netip.MustParseAddr("10.0.0.1")) },
			"http://10.0.0.1",
		},
		{
			"ipv6 address with zone",
			func(b *uri.Builder) *uri.Builder {
				return b.Scheme("http").HostAddr(netip.MustParseAddr("fe80::1%eth0")).PortNumber(8080)
			},
			"http://[fe80::1]:8080",
		},
		{
			"invalid address",
			func(b *uri.Builder) *uri.Builder { return b.Scheme("http").HostAddr(netip.Addr{}) },
			"http://",
		},
		{
			"encoded path",
			func(b *uri.Builder) *uri.Builder { return b.Scheme("http").Host("h").EncodedPath("/a b/\xc3\xbc/%41") },
			"http://h/a%20b/%C3%BC/%41",
		},
		{
			"query params",
			func(b *uri.Builder) *uri.Builder {
				return b.Scheme("http").Host("h").Path("/").QueryParam("a", "1").QueryParam("b", "x y&z")
			},
			"http://h/?a=1&b=x%20y%26z",
		},
		{
			"query param after query",
			func(b *uri.Builder) *uri.Builder { return b.Path("/").Query("a=1").QueryParam("b", "2") },
			"/?a=1&b=2",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := c.build(uri.NewBuilder(nil)).URI()
			if !u.IsValid() {
				t.Fatalf("builder produced invalid URI %q: %v", u, u.Err())
			}
			if got := u.String(); got != c.want {
				t.Errorf("builder produced %q, want %q", got, c.want)
			}
		})
	}
}

func TestBuilder_AppendsToExisting(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://example.com")
	b := uri.NewBuilder(u)
	b.Path("/a")
	b.Query("k=v")
	b.Fragment("top")

	if b.URI() != u {
		t.Error("b.URI() is not the URI passed to uri.NewBuilder")
	}
	if got, want := u.String(), "http://example.com/a?k=v#top"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
	if got, want := u.FragmentText(), "top"; got != want {
		t.Errorf("u.FragmentText() = %q, want %q", got, want)
	}
}

func TestBuilder_Invalid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	u := uri.NewBuilder(uri.New("", &uri.Options{Log: l})).UserInfo("a@b").URI()
	if u.IsValid() {
		t.Errorf("builder produced valid URI %q, want invalid", u)
	}
	if got, want := u.String(), "//a@b@"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
	if got := buf.String(); !strings.Contains(got, "URI builder left invalid URI") {
		t.Errorf("log output = %q, want builder failure record", got)
	}
}

func TestBuilder_Registry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reg := schememock.NewMockRegistry(ctrl)
	reg.EXPECT().IsHierarchical("coap").Return(true)
	reg.EXPECT().IsHierarchical("geo").Return(false)

	u1 := uri.NewBuilder(uri.New("", &uri.Options{Registry: reg})).Scheme("coap").Host("h").URI()
	if got, want := u1.String(), "coap://h"; got != want {
		t.Errorf("u1.String() = %q, want %q", got, want)
	}

	u2 := uri.NewBuilder(uri.New("", &uri.Options{Registry: reg})).Scheme("geo").Path("1,2").URI()
	if got, want := u2.String(), "geo:1,2"; got != want {
		t.Errorf("u2.String() = %q, want %q", got, want)
	}
}

func TestFromParts(t *testing.T) {
	t.Parallel()

	base := uri.MustParse("http://example.com")

	cases := []struct {
		path, query, fragment string
		want                  string
	}{
		{"/a", "k=v", "top", "http://example.com/a?k=v#top"},
		{"/a", "", "", "http://example.com/a"},
		{"", "", "f", "http://example.com#f"},
	}

	for _, c := range cases {
		u := uri.FromParts(base, c.path, c.query, c.fragment)
		if got := u.String(); got != c.want {
			t.Errorf("uri.FromParts(%q, %q, %q, %q) = %q, want %q", base, c.path, c.query, c.fragment, got, c.want)
		}
	}
	if got, want := base.String(), "http://example.com"; got != want {
		t.Errorf("base.String() after FromParts = %q, want %q", got, want)
	}
}

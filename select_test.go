package toolsel

import (
	"errors"
	"strings"
	"testing"

	"github.com/regclient/toolsel/internal/dotver"
	"github.com/regclient/toolsel/types"
	"github.com/regclient/toolsel/types/platform"
	"github.com/regclient/toolsel/types/release"
)

var (
	linux32   = release.Variant{OS: "linux", Arch: "386"}
	linux64   = release.Variant{OS: "linux", Arch: "amd64"}
	osx10dot6 = release.Variant{OS: "darwin", Arch: "amd64", OSXVersion: "10.6"}
	osx10dot8 = release.Variant{OS: "darwin", Arch: "amd64", OSXVersion: "10.8"}
)

func testRelease() release.Release {
	return release.Release{
		ID:       "1.4.2",
		Variants: []release.Variant{linux32, linux64, osx10dot6, osx10dot8},
	}
}

func TestSelectCandidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		os        string
		arch      string
		osVersion string
		expect    release.Variant
		expectErr error
	}{
		{
			name:      "unsupported os",
			os:        "Android",
			arch:      "armv7a",
			expectErr: types.ErrUnsupportedPlatform,
		},
		{
			name:      "newer os x",
			os:        "Mac OS X",
			arch:      "x86_64",
			osVersion: "10.11.12",
			expect:    osx10dot8,
		},
		{
			name:      "earlier os x",
			os:        "Mac OS X",
			arch:      "x86_64",
			osVersion: "10.7",
			expect:    osx10dot6,
		},
		{
			name:      "exact os x",
			os:        "Mac OS X",
			arch:      "x86_64",
			osVersion: "10.6",
			expect:    osx10dot6,
		},
		{
			name:      "unsupported os x",
			os:        "Mac OS X",
			arch:      "x86_64",
			osVersion: "10.5",
			expectErr: types.ErrUnsupportedOSVersion,
		},
		{
			name:      "os x missing version",
			os:        "Mac OS X",
			arch:      "x86_64",
			expectErr: types.ErrUnsupportedOSVersion,
		},
		{
			name:      "os x unparsable version",
			os:        "darwin",
			arch:      "amd64",
			osVersion: "unknown",
			expectErr: types.ErrUnsupportedOSVersion,
		},
		{
			name:   "linux 64",
			os:     "Linux",
			arch:   "amd64",
			expect: linux64,
		},
		{
			name:   "linux 32",
			os:     "linux",
			arch:   "i386",
			expect: linux32,
		},
		{
			name:      "linux version ignored",
			os:        "LINUX",
			arch:      "x86_64",
			osVersion: "5.15.0",
			expect:    linux64,
		},
		{
			name:      "missing arch",
			os:        "linux",
			arch:      "arm64",
			expectErr: types.ErrUnsupportedPlatform,
		},
		{
			name:      "unknown os passed through",
			os:        "Haiku",
			arch:      "amd64",
			expectErr: types.ErrUnsupportedPlatform,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := SelectCandidate(testRelease(), tt.os, tt.arch, tt.osVersion)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("unexpected error, expected %v, received %v", tt.expectErr, err)
				}
				var se *SelectError
				if !errors.As(err, &se) {
					t.Fatalf("error is not a SelectError: %v", err)
				}
				if len(se.Available) != len(testRelease().Variants) {
					t.Errorf("available variants missing from error: %v", se.Available)
				}
				if se.Release != "1.4.2" {
					t.Errorf("release missing from error: %s", se.Release)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != tt.expect {
				t.Errorf("unexpected variant, expected %v, received %v", tt.expect, v)
			}
			// selected variant must match the normalized query
			q := platform.Normalize(platform.Platform{OS: tt.os, Architecture: tt.arch})
			if !platform.Match(v.Platform(), q) {
				t.Errorf("variant %v does not match query %v", v, q)
			}
		})
	}
}

func TestSelectNumericOrdering(t *testing.T) {
	t.Parallel()
	rel := release.Release{
		ID: "1.x",
		Variants: []release.Variant{
			{OS: "darwin", Arch: "arm64", OSXVersion: "10.9", URL: "old"},
			{OS: "darwin", Arch: "arm64", OSXVersion: "10.10", URL: "new"},
			{OS: "darwin", Arch: "arm64", OSXVersion: "11", URL: "newest"},
		},
	}
	tests := []struct {
		osVersion string
		expectURL string
	}{
		{osVersion: "10.9.5", expectURL: "old"},
		{osVersion: "10.10", expectURL: "new"},
		{osVersion: "10.15.7", expectURL: "new"},
		{osVersion: "11.0", expectURL: "newest"},
		{osVersion: "14.2.1", expectURL: "newest"},
	}
	for _, tt := range tests {
		v, err := SelectCandidate(rel, "macOS", "aarch64", tt.osVersion)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.osVersion, err)
			continue
		}
		if v.URL != tt.expectURL {
			t.Errorf("%s: expected %s, received %s", tt.osVersion, tt.expectURL, v.URL)
		}
	}
}

func TestSelectGreatestCompatible(t *testing.T) {
	t.Parallel()
	// release order is deliberately unsorted
	mins := []string{"10.8", "10.6", "10.12", "10.7", "10.10"}
	rel := release.Release{ID: "test"}
	for _, m := range mins {
		rel.Variants = append(rel.Variants, release.Variant{OS: "darwin", Arch: "amd64", OSXVersion: m})
	}
	for _, host := range []string{"10.5", "10.6", "10.7.5", "10.9", "10.11", "10.12", "12.0"} {
		hostVer := dotver.MustParse(host)
		var expect string
		for _, m := range mins {
			mv := dotver.MustParse(m)
			if hostVer.Less(mv) {
				continue
			}
			if expect == "" || dotver.MustParse(expect).Less(mv) {
				expect = m
			}
		}
		v, err := SelectCandidate(rel, "darwin", "amd64", host)
		if expect == "" {
			if !errors.Is(err, types.ErrUnsupportedOSVersion) {
				t.Errorf("%s: expected unsupported OS version, received %v", host, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", host, err)
			continue
		}
		if v.OSXVersion != expect {
			t.Errorf("%s: expected minimum %s, received %s", host, expect, v.OSXVersion)
		}
	}
}

func TestSelectTieBreak(t *testing.T) {
	t.Parallel()
	// duplicates are not expected in real catalogs, first in release order wins
	rel := release.Release{
		ID: "dup",
		Variants: []release.Variant{
			{OS: "darwin", Arch: "amd64", OSXVersion: "10.8", URL: "first"},
			{OS: "darwin", Arch: "amd64", OSXVersion: "10.8.0", URL: "second"},
			{OS: "linux", Arch: "amd64", URL: "linux-first"},
			{OS: "Linux", Arch: "x86_64", URL: "linux-second"},
		},
	}
	v, err := SelectCandidate(rel, "darwin", "amd64", "10.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.URL != "first" {
		t.Errorf("expected first variant, received %s", v.URL)
	}
	v, err = SelectCandidate(rel, "linux", "amd64", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.URL != "linux-first" {
		t.Errorf("expected first linux variant, received %s", v.URL)
	}
}

func TestSelectMixedFamily(t *testing.T) {
	t.Parallel()
	rel := release.Release{
		ID: "mixed",
		Variants: []release.Variant{
			{OS: "darwin", Arch: "amd64", URL: "generic"},
			{OS: "darwin", Arch: "amd64", OSXVersion: "10.8", URL: "versioned"},
		},
	}
	tests := []struct {
		osVersion string
		expectURL string
	}{
		{osVersion: "10.9", expectURL: "versioned"},
		{osVersion: "10.7", expectURL: "generic"},
		{osVersion: "", expectURL: "generic"},
	}
	for _, tt := range tests {
		v, err := SelectCandidate(rel, "darwin", "amd64", tt.osVersion)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.osVersion, err)
			continue
		}
		if v.URL != tt.expectURL {
			t.Errorf("%q: expected %s, received %s", tt.osVersion, tt.expectURL, v.URL)
		}
	}
}

func TestSelectEmptyRelease(t *testing.T) {
	t.Parallel()
	_, err := Select(release.Release{}, platform.Platform{OS: "linux", Architecture: "amd64"})
	if !errors.Is(err, types.ErrUnsupportedPlatform) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSelectErrorMessage(t *testing.T) {
	t.Parallel()
	_, err := SelectCandidate(testRelease(), "Mac OS X", "x86_64", "10.5")
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"unsupported OS version", "darwin/amd64/10.5", "release 1.4.2", "linux/386", "darwin/amd64/10.8"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

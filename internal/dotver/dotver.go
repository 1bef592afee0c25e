// Package dotver compares dotted numeric versions like OS release numbers.
package dotver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/regclient/toolsel/types"
)

// Version is a sequence of numeric segments, e.g. 10.15.7
type Version struct {
	parts    []int
	suffix   string
	original string
}

// Parse converts a string into a Version.
// Anything after the leading digits and dots is ignored, so "10.15.7 (19H2)" parses as 10.15.7.
func Parse(s string) (Version, error) {
	original := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "v"), "V")
	end := strings.IndexFunc(s, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})
	suffix := ""
	if end >= 0 {
		suffix = strings.TrimSpace(s[end:])
		s = s[:end]
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return Version{}, fmt.Errorf("version %q has no numeric segments: %w", original, types.ErrParsingFailed)
	}
	segs := strings.Split(s, ".")
	parts := make([]int, len(segs))
	for i, seg := range segs {
		num, err := strconv.Atoi(seg)
		if err != nil {
			return Version{}, fmt.Errorf("version %q segment %d: %w", original, i, types.ErrParsingFailed)
		}
		parts[i] = num
	}
	return Version{
		parts:    parts,
		suffix:   suffix,
		original: strings.TrimSpace(original),
	}, nil
}

// MustParse is Parse that panics on invalid input, for static values and tests
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1 if a < b, 0 if a == b, 1 if a > b.
// Missing trailing segments are treated as zero.
func Compare(a, b Version) int {
	maxLen := len(a.parts)
	if len(b.parts) > maxLen {
		maxLen = len(b.parts)
	}
	for i := 0; i < maxLen; i++ {
		aPart, bPart := a.segment(i), b.segment(i)
		if aPart < bPart {
			return -1
		}
		if aPart > bPart {
			return 1
		}
	}
	return 0
}

// Compare is a convenience wrapper for [Compare]
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Less reports whether v sorts before other
func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

// Segments returns a copy of the numeric segments
func (v Version) Segments() []int {
	return append([]int{}, v.parts...)
}

// Suffix returns any text after the numeric segments, e.g. "rc1" for "1.22rc1"
func (v Version) Suffix() string {
	return v.suffix
}

// String returns the original version string
func (v Version) String() string {
	return v.original
}

func (v Version) segment(i int) int {
	if i < len(v.parts) {
		return v.parts[i]
	}
	return 0
}

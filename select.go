package toolsel

import (
	"fmt"
	"strings"

	"github.com/regclient/toolsel/internal/dotver"
	"github.com/regclient/toolsel/types"
	"github.com/regclient/toolsel/types/platform"
	"github.com/regclient/toolsel/types/release"
)

// SelectError is returned when no variant of a release can be installed on the requested platform.
// Kind is either [types.ErrUnsupportedPlatform] or [types.ErrUnsupportedOSVersion].
type SelectError struct {
	Kind      error
	Release   string
	Query     platform.Platform
	Available []release.Variant
}

func (e *SelectError) Error() string {
	avail := make([]string, 0, len(e.Available))
	for _, v := range e.Available {
		avail = append(avail, v.String())
	}
	rel := ""
	if e.Release != "" {
		rel = " in release " + e.Release
	}
	return fmt.Sprintf("%v: no variant for %s%s, available: [%s]", e.Kind, e.Query, rel, strings.Join(avail, ", "))
}

func (e *SelectError) Unwrap() error {
	return e.Kind
}

// SelectCandidate normalizes the raw platform strings and returns the best variant of the release.
// An empty rawOSVersion means the OS version is unknown.
func SelectCandidate(rel release.Release, rawOS, rawArch, rawOSVersion string) (release.Variant, error) {
	return Select(rel, platform.Platform{
		OS:           rawOS,
		Architecture: rawArch,
		OSVersion:    rawOSVersion,
	})
}

// Select returns the best variant of the release for the platform.
//
// Variants must match the normalized OS and architecture.
// When matching variants declare a minimum OS version, the newest one at or below the query OS version is returned.
// Variants without a minimum version are used when no versioned variant applies.
// Ties are resolved by release order.
func Select(rel release.Release, query platform.Platform) (release.Variant, error) {
	query = platform.Normalize(query)
	var versioned, unversioned []release.Variant
	for _, v := range rel.Variants {
		if !platform.Match(v.Platform(), query) {
			continue
		}
		if v.Versioned() {
			versioned = append(versioned, v)
		} else {
			unversioned = append(unversioned, v)
		}
	}
	if len(versioned) == 0 && len(unversioned) == 0 {
		return release.Variant{}, newSelectError(types.ErrUnsupportedPlatform, rel, query)
	}
	if len(versioned) > 0 {
		if v, ok := newestCompatible(versioned, query.OSVersion); ok {
			return v, nil
		}
		if len(unversioned) == 0 {
			return release.Variant{}, newSelectError(types.ErrUnsupportedOSVersion, rel, query)
		}
	}
	return unversioned[0], nil
}

// newestCompatible returns the variant with the greatest minimum version that is not above osVersion
func newestCompatible(variants []release.Variant, osVersion string) (release.Variant, bool) {
	if osVersion == "" {
		return release.Variant{}, false
	}
	host, err := dotver.Parse(osVersion)
	if err != nil {
		return release.Variant{}, false
	}
	found := false
	var best release.Variant
	var bestMin dotver.Version
	for _, v := range variants {
		minVer, err := dotver.Parse(v.OSXVersion)
		if err != nil || host.Less(minVer) {
			continue
		}
		if !found || bestMin.Less(minVer) {
			found = true
			best = v
			bestMin = minVer
		}
	}
	return best, found
}

func newSelectError(kind error, rel release.Release, query platform.Platform) *SelectError {
	return &SelectError{
		Kind:      kind,
		Release:   rel.ID,
		Query:     query,
		Available: append([]release.Variant{}, rel.Variants...),
	}
}

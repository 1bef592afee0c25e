// Package platform normalizes and describes the OS and architecture of a host or release artifact
package platform

import (
	"fmt"
	"strings"

	"github.com/regclient/toolsel/types"
)

// Platform describes the target of an install, or the platform a variant was built for
type Platform struct {
	// OS is the operating system, e.g. linux, darwin, windows
	OS string `json:"os" yaml:"os"`
	// Architecture is the CPU architecture, e.g. amd64, arm64
	Architecture string `json:"architecture" yaml:"architecture"`
	// OSVersion is a dotted version of the OS, empty when unknown or not relevant
	OSVersion string `json:"os.version,omitempty" yaml:"osVersion,omitempty"`
}

// String outputs the platform in the format os/arch[/osversion]
func (p Platform) String() string {
	if p.OS == "" && p.Architecture == "" {
		return "unknown"
	}
	if p.OSVersion != "" {
		return p.OS + "/" + p.Architecture + "/" + p.OSVersion
	}
	return p.OS + "/" + p.Architecture
}

// Normalize converts the OS and Architecture to canonical identifiers
func Normalize(p Platform) Platform {
	return Platform{
		OS:           string(NormalizeOS(p.OS)),
		Architecture: string(NormalizeArch(p.Architecture)),
		OSVersion:    strings.TrimSpace(p.OSVersion),
	}
}

// Known reports if both the OS and Architecture are canonical identifiers
func (p Platform) Known() bool {
	return OS(p.OS).Known() && Arch(p.Architecture).Known()
}

// Match reports if two platforms have the same normalized OS and Architecture.
// The OS version is not compared.
func Match(a, b Platform) bool {
	return NormalizeOS(a.OS) == NormalizeOS(b.OS) && NormalizeArch(a.Architecture) == NormalizeArch(b.Architecture)
}

// Parse converts a platform string into a normalized Platform.
// The format is os/arch[/osversion], or "local" for the running host.
func Parse(s string) (Platform, error) {
	s = strings.TrimSpace(s)
	if s == "local" {
		return Local(), nil
	}
	parts := strings.SplitN(s, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Platform{}, fmt.Errorf("platform %q must be os/arch[/osversion]: %w", s, types.ErrParsingFailed)
	}
	p := Platform{
		OS:           parts[0],
		Architecture: parts[1],
	}
	if len(parts) == 3 {
		p.OSVersion = parts[2]
	}
	return Normalize(p), nil
}

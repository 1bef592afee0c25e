// Package release defines the catalog of toolchain releases and their downloadable variants
package release

import (
	"fmt"
	"strings"

	// crypto libraries included for go-digest
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/opencontainers/go-digest"

	"github.com/regclient/toolsel/internal/dotver"
	"github.com/regclient/toolsel/types"
	"github.com/regclient/toolsel/types/platform"
)

// Variant is a single downloadable artifact of a release
type Variant struct {
	OS   string `yaml:"os" json:"os"`
	Arch string `yaml:"arch" json:"arch"`
	// OSXVersion is the minimum OS version, only set for families with version ranged builds
	OSXVersion string        `yaml:"osxversion,omitempty" json:"osxversion,omitempty"`
	URL        string        `yaml:"url,omitempty" json:"url,omitempty"`
	Checksum   digest.Digest `yaml:"checksum,omitempty" json:"checksum,omitempty"`
	Size       int64         `yaml:"size,omitempty" json:"size,omitempty"`
}

// Platform returns the normalized platform of the variant, with the minimum OS version as the OSVersion
func (v Variant) Platform() platform.Platform {
	return platform.Normalize(platform.Platform{
		OS:           v.OS,
		Architecture: v.Arch,
		OSVersion:    v.OSXVersion,
	})
}

// Versioned reports if the variant is limited to a minimum OS version
func (v Variant) Versioned() bool {
	return strings.TrimSpace(v.OSXVersion) != ""
}

// String describes the variant for log and error messages
func (v Variant) String() string {
	return v.Platform().String()
}

// Validate checks the variant for missing or malformed fields
func (v Variant) Validate() error {
	if strings.TrimSpace(v.OS) == "" {
		return fmt.Errorf("os is empty: %w", types.ErrInvalidVariant)
	}
	if strings.TrimSpace(v.Arch) == "" {
		return fmt.Errorf("arch is empty: %w", types.ErrInvalidVariant)
	}
	if v.Versioned() {
		if _, err := dotver.Parse(v.OSXVersion); err != nil {
			return fmt.Errorf("osxversion %q: %v: %w", v.OSXVersion, err, types.ErrInvalidVariant)
		}
	}
	if v.Checksum != "" {
		if err := v.Checksum.Validate(); err != nil {
			return fmt.Errorf("checksum %q: %v: %w", v.Checksum, err, types.ErrInvalidVariant)
		}
	}
	return nil
}

// Release is every variant published for one toolchain version
type Release struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name,omitempty" json:"name,omitempty"`
	Variants []Variant `yaml:"variants" json:"variants"`
}

// Platforms lists the platform of each variant, in release order
func (r Release) Platforms() []platform.Platform {
	list := make([]platform.Platform, 0, len(r.Variants))
	for _, v := range r.Variants {
		list = append(list, v.Platform())
	}
	return list
}

// Validate checks every variant in the release
func (r Release) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("release id is empty: %w", types.ErrInvalidVariant)
	}
	for i, v := range r.Variants {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("release %s variant %d: %w", r.ID, i, err)
		}
	}
	return nil
}

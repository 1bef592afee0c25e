package release

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/regclient/toolsel/internal/dotver"
	"github.com/regclient/toolsel/types"
)

// CatalogVersion is the newest catalog schema this package understands
const CatalogVersion = 1

// Catalog is the list of releases provided by a release metadata source
type Catalog struct {
	Version  int       `yaml:"version" json:"version"`
	Releases []Release `yaml:"releases" json:"releases"`
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		Version:  CatalogVersion,
		Releases: []Release{},
	}
}

// LoadReader parses a yaml or json catalog from an io.Reader
func LoadReader(r io.Reader) (*Catalog, error) {
	c := New()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	// verify loaded version is not higher than supported version
	if c.Version > CatalogVersion {
		return c, fmt.Errorf("catalog version %d: %w", c.Version, types.ErrUnsupportedConfigVersion)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile parses a catalog from the named file
func LoadFile(filename string) (*Catalog, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadReader(file)
}

// Validate checks each release and variant in the catalog
func (c *Catalog) Validate() error {
	for _, r := range c.Releases {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IDs lists the release ids in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Releases))
	for _, r := range c.Releases {
		ids = append(ids, r.ID)
	}
	return ids
}

// Release returns the release with a matching id, the "go" prefix is optional
func (c *Catalog) Release(id string) (Release, error) {
	for _, r := range c.Releases {
		if r.ID == id {
			return r, nil
		}
	}
	want := trimGoPrefix(id)
	for _, r := range c.Releases {
		if trimGoPrefix(r.ID) == want {
			return r, nil
		}
	}
	return Release{}, fmt.Errorf("release %s: %w", id, types.ErrNotFound)
}

// Latest returns the release with the highest version id.
// Ids with text after the number, like "1.22rc1", sort below the plain id with the same number.
func (c *Catalog) Latest() (Release, error) {
	found := false
	var latest Release
	var latestVer dotver.Version
	for _, r := range c.Releases {
		ver, err := dotver.Parse(trimGoPrefix(r.ID))
		if err != nil {
			continue
		}
		// first release wins on equal versions
		if !found || newerID(ver, latestVer) {
			found = true
			latest = r
			latestVer = ver
		}
	}
	if !found {
		return Release{}, fmt.Errorf("latest release: %w", types.ErrNotFound)
	}
	return latest, nil
}

// newerID reports if a is a newer release id than b
func newerID(a, b dotver.Version) bool {
	if cmp := dotver.Compare(a, b); cmp != 0 {
		return cmp > 0
	}
	return a.Suffix() == "" && b.Suffix() != ""
}

func trimGoPrefix(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "go")
}

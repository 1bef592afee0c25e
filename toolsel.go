// Package toolsel selects the toolchain release artifact matching a target platform
package toolsel

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/regclient/toolsel/types/platform"
	"github.com/regclient/toolsel/types/release"
)

// Client resolves releases from a catalog and selects variants for platforms
type Client struct {
	catalog *release.Catalog
	loadErr error
	log     *logrus.Logger
}

// Opt functions are used to configure New
type Opt func(*Client)

// Result is the outcome of one selection in a matrix
type Result struct {
	Platform platform.Platform `json:"platform"`
	Variant  *release.Variant  `json:"variant,omitempty"`
	Err      error             `json:"-"`
	Error    string            `json:"error,omitempty"`
}

// New returns a client, an empty catalog is used unless one is provided
func New(opts ...Opt) *Client {
	c := Client{
		catalog: release.New(),
		// logging is disabled by default
		log: &logrus.Logger{Out: io.Discard},
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.log.WithFields(logrus.Fields{
		"releases": len(c.catalog.Releases),
	}).Debug("toolsel initialized")
	return &c
}

// WithCatalog uses an already loaded catalog
func WithCatalog(catalog *release.Catalog) Opt {
	return func(c *Client) {
		if catalog != nil {
			c.catalog = catalog
		}
	}
}

// WithCatalogFile loads the catalog from a file, errors are returned by the first request
func WithCatalogFile(filename string) Opt {
	return func(c *Client) {
		catalog, err := release.LoadFile(filename)
		if err != nil {
			c.loadErr = err
			return
		}
		c.catalog = catalog
	}
}

// WithLog overrides default logrus Logger
func WithLog(log *logrus.Logger) Opt {
	return func(c *Client) {
		c.log = log
	}
}

// Catalog returns the catalog used by the client
func (c *Client) Catalog() (*release.Catalog, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return c.catalog, nil
}

// Release returns a release by id, an empty id returns the latest release
func (c *Client) Release(id string) (release.Release, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return release.Release{}, err
	}
	if id == "" {
		return catalog.Latest()
	}
	return catalog.Release(id)
}

// Candidate selects the variant of a release to install on the platform
func (c *Client) Candidate(ctx context.Context, releaseID string, p platform.Platform) (release.Variant, error) {
	if err := ctx.Err(); err != nil {
		return release.Variant{}, err
	}
	rel, err := c.Release(releaseID)
	if err != nil {
		return release.Variant{}, err
	}
	return c.candidate(rel, p)
}

// Matrix selects a variant for each platform concurrently.
// Selection failures are reported in each Result, the returned error is only set when the release cannot be resolved or the context is done.
func (c *Client) Matrix(ctx context.Context, releaseID string, platforms []platform.Platform) ([]Result, error) {
	rel, err := c.Release(releaseID)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(platforms))
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range platforms {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].Platform = platform.Normalize(p)
			v, err := c.candidate(rel, p)
			if err != nil {
				results[i].Err = err
				results[i].Error = err.Error()
				return nil
			}
			results[i].Variant = &v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) candidate(rel release.Release, p platform.Platform) (release.Variant, error) {
	v, err := Select(rel, p)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"release":  rel.ID,
			"platform": p.String(),
			"err":      err,
		}).Debug("No variant selected")
		return v, err
	}
	c.log.WithFields(logrus.Fields{
		"release":  rel.ID,
		"platform": p.String(),
		"variant":  v.String(),
		"url":      v.URL,
	}).Debug("Variant selected")
	return v, nil
}

package rubygems

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/gemtree/pkg/cache"
	gterrors "github.com/matzehuels/gemtree/pkg/errors"
	"github.com/matzehuels/gemtree/pkg/integrations"
	"github.com/matzehuels/gemtree/pkg/observability"
)

// DefaultBaseURL is the RubyGems gem metadata endpoint. Gem documents live
// at DefaultBaseURL + "/" + name + ".json".
const DefaultBaseURL = "https://rubygems.org/api/v1/gems"

// Dependency is one declared runtime dependency of a gem.
type Dependency struct {
	Name        string `json:"name"`         // Dependency gem name as reported by the registry
	Requirement string `json:"requirements"` // Version requirement (e.g., "~> 1.5"); informational only
}

// Stats reports memo cache usage and the number of registry requests made.
type Stats struct {
	Hits    int // Lookups answered from the memo cache
	Misses  int // Lookups that required a fetch
	Fetches int // Successful registry requests
	Entries int // Gems currently memoized
}

// Client resolves gem names to their runtime dependency lists.
//
// Each Client owns a memo cache: a gem is fetched from the registry at most
// once per Client, and later lookups return the stored list even when it is
// empty. Failed fetches are not cached.
//
// A Client is not safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
	memo    *cache.Memory[[]Dependency]
	fetches int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides [DefaultBaseURL]. A trailing slash is removed.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.Client = integrations.NewClient(d, nil)
	}
}

// NewClient creates a RubyGems client with an empty memo cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		Client:  integrations.NewClient(integrations.DefaultTimeout, nil),
		baseURL: DefaultBaseURL,
		memo:    cache.NewMemory[[]Dependency](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the registry endpoint gem documents are fetched from.
func (c *Client) BaseURL() string { return c.baseURL }

// RuntimeDependencies returns the runtime dependencies declared by gem, in
// registry order.
//
// The name is used verbatim in the request URL. A document without
// dependencies.runtime yields an empty list, not an error. Transport
// failures, non-2xx statuses and malformed JSON are returned unchanged in
// kind (see [integrations.Client.Get]) and leave the memo cache untouched.
//
// The returned slice is a copy; modifying it does not affect the cache.
func (c *Client) RuntimeDependencies(ctx context.Context, gem string) ([]Dependency, error) {
	hooks := observability.Cache()
	if deps, ok := c.memo.Get(gem); ok {
		hooks.OnCacheHit(ctx, gem)
		return slices.Clone(deps), nil
	}
	hooks.OnCacheMiss(ctx, gem)

	deps, err := c.fetch(ctx, gem)
	if err != nil {
		return nil, err
	}
	c.memo.Add(gem, deps)
	hooks.OnCacheSet(ctx, gem, len(deps))
	return slices.Clone(deps), nil
}

// Stats returns memo cache and fetch counters for this client.
func (c *Client) Stats() Stats {
	s := c.memo.Stats()
	return Stats{Hits: s.Hits, Misses: s.Misses, Fetches: c.fetches, Entries: s.Entries}
}

func (c *Client) fetch(ctx context.Context, gem string) ([]Dependency, error) {
	var data gemResponse
	if err := c.Get(ctx, c.gemURL(gem), &data); err != nil {
		return nil, gterrors.Wrap(gterrors.GetCode(err), err, "gem %s", gem)
	}
	c.fetches++

	deps := data.Dependencies.Runtime
	if deps == nil {
		deps = []Dependency{}
	}
	return deps, nil
}

func (c *Client) gemURL(gem string) string {
	return c.baseURL + "/" + gem + ".json"
}

type gemResponse struct {
	Dependencies struct {
		Runtime []Dependency `json:"runtime"`
	} `json:"dependencies"`
}

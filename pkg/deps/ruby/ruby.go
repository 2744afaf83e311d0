package ruby

import (
	"context"

	"github.com/matzehuels/gemtree/pkg/deps"
	"github.com/matzehuels/gemtree/pkg/integrations/rubygems"
)

// NewSource adapts a RubyGems client to [deps.Source].
func NewSource(c *rubygems.Client) deps.Source {
	return source{c}
}

// NewExpander creates a client with opts and an Expander reading from it.
// The client is returned so callers can inspect its memo cache statistics.
func NewExpander(opts deps.Options, clientOpts ...rubygems.Option) (*deps.Expander, *rubygems.Client) {
	c := rubygems.NewClient(clientOpts...)
	return deps.NewExpander(NewSource(c), opts), c
}

type source struct{ client *rubygems.Client }

func (s source) RuntimeDependencies(ctx context.Context, name string) ([]deps.Dependency, error) {
	gems, err := s.client.RuntimeDependencies(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]deps.Dependency, len(gems))
	for i, g := range gems {
		out[i] = deps.Dependency{Name: g.Name, Requirement: g.Requirement}
	}
	return out, nil
}

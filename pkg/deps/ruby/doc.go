// Package ruby connects the RubyGems registry client to the dependency
// expander.
//
//	exp, client := ruby.NewExpander(deps.Options{}, rubygems.WithBaseURL(url))
//	edges, err := exp.Tree(ctx, "sinatra")
//
// Each call to [NewExpander] creates a fresh client, so every expander
// starts with an empty memo cache.
package ruby

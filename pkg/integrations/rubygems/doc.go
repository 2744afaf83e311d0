// Package rubygems provides an HTTP client for the RubyGems.org API.
//
// # Overview
//
// This package reads runtime dependency declarations from RubyGems.org
// (https://rubygems.org). Only the dependencies.runtime array of each gem
// document is used; development dependencies and all other metadata are
// ignored.
//
// # Usage
//
//	client := rubygems.NewClient()
//	deps, err := client.RuntimeDependencies(ctx, "sinatra")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range deps {
//	    fmt.Println(d.Name, d.Requirement)
//	}
//
// # Memoization
//
// A [Client] remembers every list it has fetched for the rest of its
// lifetime, keyed by the exact gem name it was asked for. The first
// successful fetch wins; nothing is written to disk and nothing expires.
// Create a new Client to start from an empty cache.
//
// # Base URL
//
// [DefaultBaseURL] points at the public registry. Use [WithBaseURL] to talk
// to a mirror or a test server.
package rubygems

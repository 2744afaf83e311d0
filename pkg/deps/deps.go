package deps

import (
	"context"
	"fmt"
)

// Dependency is one declared runtime dependency of a package.
type Dependency struct {
	Name        string // Dependency package name
	Requirement string // Version requirement string; not used for expansion
}

// Edge is a directed "Gem requires Requires" relationship.
type Edge struct {
	Gem      string `json:"gem"`
	Requires string `json:"requires"`
}

// String returns "gem -> requires".
func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.Gem, e.Requires)
}

// Source resolves a package name to its runtime dependencies.
type Source interface {
	// RuntimeDependencies returns the runtime dependencies declared by name,
	// in registry order. A package without dependencies yields an empty list.
	RuntimeDependencies(ctx context.Context, name string) ([]Dependency, error)
}

// SourceFunc adapts a function to [Source].
type SourceFunc func(ctx context.Context, name string) ([]Dependency, error)

// RuntimeDependencies calls f.
func (f SourceFunc) RuntimeDependencies(ctx context.Context, name string) ([]Dependency, error) {
	return f(ctx, name)
}

// Options configures tree expansion.
type Options struct {
	Logger func(string, ...any) // Debug callback, called once per expanded package (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

package deps

import (
	"context"
	"slices"
	"strings"
	"time"

	gterrors "github.com/matzehuels/gemtree/pkg/errors"
	"github.com/matzehuels/gemtree/pkg/observability"
)

// Expander flattens the transitive runtime dependencies of a package into
// an ordered edge list.
type Expander struct {
	src  Source
	opts Options
}

// NewExpander creates an Expander that reads dependency lists from src.
func NewExpander(src Source, opts Options) *Expander {
	return &Expander{src: src, opts: opts.WithDefaults()}
}

// Tree returns every direct and transitive dependency edge reachable from
// name, in depth-first pre-order: each edge is followed immediately by the
// edges of its target's subtree, before the next sibling.
//
// Shared dependencies are expanded again each time they are reached, so
// diamond dependencies produce repeated edges. A package without
// dependencies yields an empty, non-nil slice.
//
// Any error from the Source aborts the whole expansion and no edges are
// returned. A package that appears twice on the current path is reported
// as a CYCLE_DETECTED error.
func (e *Expander) Tree(ctx context.Context, name string) ([]Edge, error) {
	hooks := observability.Expand()
	hooks.OnExpandStart(ctx, name)
	start := time.Now()

	w := &walker{
		ctx:    ctx,
		src:    e.src,
		logf:   e.opts.Logger,
		onPath: make(map[string]bool),
		edges:  []Edge{},
	}
	err := w.expand(name)
	if err != nil {
		w.edges = nil
	}

	hooks.OnExpandComplete(ctx, name, len(w.edges), time.Since(start), err)
	return w.edges, err
}

type walker struct {
	ctx  context.Context
	src  Source
	logf func(string, ...any)

	path   []string
	onPath map[string]bool
	edges  []Edge
}

func (w *walker) expand(name string) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	if w.onPath[name] {
		cycle := append(slices.Clone(w.path), name)
		return gterrors.New(gterrors.ErrCodeCycle, "dependency cycle: %s", strings.Join(cycle, " -> "))
	}

	w.onPath[name] = true
	w.path = append(w.path, name)
	defer func() {
		delete(w.onPath, name)
		w.path = w.path[:len(w.path)-1]
	}()

	deps, err := w.src.RuntimeDependencies(w.ctx, name)
	if err != nil {
		return err
	}
	w.logf("%s: %d runtime dependencies (depth %d)", name, len(deps), len(w.path)-1)

	for _, d := range deps {
		w.edges = append(w.edges, Edge{Gem: name, Requires: d.Name})
		if err := w.expand(d.Name); err != nil {
			return err
		}
	}
	return nil
}

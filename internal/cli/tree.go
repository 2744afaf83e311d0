package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gemtree/internal/config"
	"github.com/matzehuels/gemtree/pkg/deps"
	"github.com/matzehuels/gemtree/pkg/deps/ruby"
	pkgio "github.com/matzehuels/gemtree/pkg/io"
)

// treeCommand creates the tree command.
func (c *CLI) treeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <gem>",
		Short: "Print the flattened runtime dependency tree of a gem",
		Long: `Print every direct and transitive runtime dependency edge of a gem.

Edges are listed depth-first: each edge is followed by the edges of its
target's own dependencies before the next sibling. Gems reachable along
several paths are listed once per path.

Examples:
  gemtree tree sinatra
  gemtree tree rails --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gem, err := gemArg(args[0])
			if err != nil {
				return err
			}
			if err := config.CheckFormat(c.Config.Format); err != nil {
				return err
			}
			edges, err := c.resolveTree(cmd.Context(), gem)
			if err != nil {
				return err
			}
			if c.Config.Format == config.FormatJSON {
				return pkgio.WriteJSON(gem, edges, c.out)
			}
			if len(edges) == 0 {
				printInfo(c.errOut, "%s has no runtime dependencies", gem)
				return nil
			}
			return pkgio.WriteText(edges, c.out)
		},
	}
	cmd.Flags().StringP("format", "f", config.FormatText, "output format (text, json)")
	return cmd
}

// resolveTree expands gem against the configured registry, logging progress
// and memo cache statistics.
func (c *CLI) resolveTree(ctx context.Context, gem string) ([]deps.Edge, error) {
	logger := loggerFromContext(ctx)
	client := c.newClient()
	exp := deps.NewExpander(ruby.NewSource(client), deps.Options{
		Logger: func(msg string, args ...any) { logger.Debugf(msg, args...) },
	})

	logger.Infof("Resolving %s from %s", gem, client.BaseURL())
	prog := newProgress(logger)

	var spin *Spinner
	if c.spinner {
		spin = newSpinner(ctx, c.errOut, fmt.Sprintf("Resolving %s...", gem))
		spin.Start()
	}
	edges, err := exp.Tree(ctx, gem)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return nil, err
	}

	s := client.Stats()
	logger.Debug("memo cache", "fetches", s.Fetches, "hits", s.Hits, "gems", s.Entries)
	prog.done(fmt.Sprintf("Resolved %d edges", len(edges)))
	return edges, nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gemtree/pkg/deps"
	pkgio "github.com/matzehuels/gemtree/pkg/io"
)

// weightedCommand creates the weighted command.
func (c *CLI) weightedCommand() *cobra.Command {
	var header bool

	cmd := &cobra.Command{
		Use:   "weighted <gem>",
		Short: "Print distinct dependency edges with occurrence counts",
		Long: `Expand a gem's dependency tree and print one "gem,requires,count" line per
distinct edge, in the order each edge first appears in the tree.

Examples:
  gemtree weighted rails
  gemtree weighted rails --header > rails.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gem, err := gemArg(args[0])
			if err != nil {
				return err
			}
			edges, err := c.resolveTree(cmd.Context(), gem)
			if err != nil {
				return err
			}
			weighted := deps.Weigh(edges)
			loggerFromContext(cmd.Context()).Debugf("%d distinct of %d edges", len(weighted), len(edges))
			return pkgio.WriteCSV(weighted, header, c.out)
		},
	}
	cmd.Flags().BoolVar(&header, "header", false, "write a gem,requires,count header row")
	return cmd
}

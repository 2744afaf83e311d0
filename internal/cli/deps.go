package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// depsCommand creates the deps command.
func (c *CLI) depsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <gem>",
		Short: "Print a gem's direct runtime dependencies",
		Long: `Print the runtime dependencies a gem declares, with their version
requirements, in registry order. Nothing is expanded recursively.

Example:
  gemtree deps rails`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gem, err := gemArg(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			client := c.newClient()
			logger.Infof("Fetching %s from %s", gem, client.BaseURL())

			list, err := client.RuntimeDependencies(cmd.Context(), gem)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				printInfo(c.errOut, "%s has no runtime dependencies", gem)
				return nil
			}

			tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			for _, d := range list {
				fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Requirement)
			}
			return tw.Flush()
		},
	}
}

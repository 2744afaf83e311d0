package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying, in order: defaults, the config
file, .env, GEMTREE_* environment variables and command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := c.Config.File
			if file == "" {
				file = "(none)"
			}
			printKeyValue(c.out, "file", file)
			printKeyValue(c.out, "base-url", c.Config.BaseURL)
			printKeyValue(c.out, "timeout", c.Config.Timeout.String())
			printKeyValue(c.out, "format", c.Config.Format)
			printKeyValue(c.out, "verbose", strconv.FormatBool(c.Config.Verbose))
			return nil
		},
	}
}

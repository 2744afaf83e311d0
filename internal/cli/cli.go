// Package cli implements the gemtree command-line interface.
//
// # Commands
//
//   - tree: Print the flattened runtime dependency tree of a gem
//   - weighted: Print distinct dependency edges with occurrence counts
//   - deps: Print a gem's direct runtime dependencies
//   - config: Print the effective configuration
//   - completion: Generate shell completion scripts
//
// Results go to stdout; logs, progress and status lines go to stderr.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every registry request and memo cache lookup.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gemtree/internal/config"
	"github.com/matzehuels/gemtree/pkg/buildinfo"
	gterrors "github.com/matzehuels/gemtree/pkg/errors"
	"github.com/matzehuels/gemtree/pkg/integrations"
	"github.com/matzehuels/gemtree/pkg/integrations/rubygems"
	"github.com/matzehuels/gemtree/pkg/observability"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	out     io.Writer // command results
	errOut  io.Writer // status lines
	dir     string    // directory searched for config and .env files
	spinner bool
}

// New creates a new CLI instance that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		out:     os.Stdout,
		errOut:  w,
		spinner: isTerminal(w),
	}
}

// SetOutput redirects command results, which go to stdout by default.
func (c *CLI) SetOutput(w io.Writer) { c.out = w }

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gemtree",
		Short: "gemtree flattens RubyGems runtime dependency trees",
		Long: `gemtree fetches a gem's runtime dependencies from the RubyGems API and
expands them recursively into a depth-first list of (gem, requires) edges.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: gemtree.toml or gemtree.yaml in the working directory)")
	pf.String("base-url", rubygems.DefaultBaseURL, "gem API base URL")
	pf.Duration("timeout", integrations.DefaultTimeout, "per-request timeout")
	pf.BoolP("verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.weightedCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration, tunes the logger and registers observability
// hooks before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.dir, cmd.Flags())
	if err != nil {
		return err
	}
	c.Config = cfg

	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
		c.spinner = false
	}

	logger := c.Logger.With("run", strings.SplitN(uuid.NewString(), "-", 2)[0])
	if cfg.File != "" {
		logger.Debugf("Loaded config from %s", cfg.File)
	}

	hooks := logHooks{logger: logger}
	observability.SetHTTPHooks(hooks)
	observability.SetCacheHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}

func (c *CLI) newClient() *rubygems.Client {
	return rubygems.NewClient(
		rubygems.WithBaseURL(c.Config.BaseURL),
		rubygems.WithTimeout(c.Config.Timeout),
	)
}

// gemArg validates a gem name argument. Only emptiness is rejected; any
// other name is passed through to the registry.
func gemArg(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", gterrors.New(gterrors.ErrCodeInvalidPackage, "gem name must not be empty")
	}
	return s, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

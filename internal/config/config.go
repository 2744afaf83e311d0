// Package config loads gemtree settings from defaults, a config file, a
// .env file, the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	gterrors "github.com/matzehuels/gemtree/pkg/errors"
	"github.com/matzehuels/gemtree/pkg/integrations"
	"github.com/matzehuels/gemtree/pkg/integrations/rubygems"
)

// EnvPrefix is the prefix of environment variables read by [Load]
// (e.g., GEMTREE_BASE_URL=http://localhost:9292/api/v1/gems).
const EnvPrefix = "GEMTREE_"

// Output formats for the tree command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// fileNames are the config files searched for, in order, when no explicit
// path is given.
var fileNames = []string{"gemtree.toml", "gemtree.yaml", "gemtree.yml"}

// Config holds all configuration for the application.
type Config struct {
	BaseURL string        `koanf:"base-url"`
	Timeout time.Duration `koanf:"timeout"`
	Verbose bool          `koanf:"verbose"`
	Format  string        `koanf:"format"`

	File string `koanf:"-"` // Config file that was loaded, empty if none
}

// Load resolves configuration in increasing priority:
// defaults, config file, .env file, environment, flags.
//
// dir is searched for gemtree.toml / gemtree.yaml and .env; "" means the
// working directory. A --config flag on f selects an explicit file, which
// then must exist. Only flags that were set on the command line override
// lower layers.
func Load(dir string, f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"base-url": rubygems.DefaultBaseURL,
		"timeout":  integrations.DefaultTimeout.String(),
		"verbose":  false,
		"format":   FormatText,
	}
	if err := k.Load(mapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// 2. Config file
	path, err := configPath(dir, f)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	}

	// 3. .env file, below the real environment
	dotenv, err := readDotenv(dir)
	if err != nil {
		return nil, err
	}
	if err := k.Load(mapProvider(dotenv), nil); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// 4. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// 5. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "decode configuration")
	}
	cfg.File = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that the loaders cannot. The format key is
// checked by [CheckFormat] where it is used.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return gterrors.New(gterrors.ErrCodeInvalidConfig, "base-url must not be empty")
	}
	if c.Timeout <= 0 {
		return gterrors.New(gterrors.ErrCodeInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// CheckFormat reports whether format is a supported tree output format.
// Only the tree command reads the format key, so Validate leaves it alone.
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return gterrors.New(gterrors.ErrCodeInvalidFormat, "unknown format %q (available: %s, %s)", format, FormatText, FormatJSON)
	}
}

// envKey maps GEMTREE_BASE_URL to base-url.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
}

func configPath(dir string, f *pflag.FlagSet) (string, error) {
	if f != nil {
		if fl := f.Lookup("config"); fl != nil && fl.Value.String() != "" {
			p := fl.Value.String()
			if _, err := os.Stat(p); err != nil {
				return "", gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "config file %s", p)
			}
			return p, nil
		}
	}
	for _, name := range fileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

func readDotenv(dir string) (map[string]interface{}, error) {
	vals, err := godotenv.Read(filepath.Join(dir, ".env"))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "read .env")
	}
	out := make(map[string]interface{})
	for k, v := range vals {
		if strings.HasPrefix(k, EnvPrefix) {
			out[envKey(k)] = v
		}
	}
	return out, nil
}

// mapProvider serves an in-memory map as a koanf provider.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) {
	return p, nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("not implemented")
}

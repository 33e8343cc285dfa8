package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/moharchaudhuri17/tidytuesday/pkg/buildinfo"
	"github.com/moharchaudhuri17/tidytuesday/pkg/cache"
	"github.com/moharchaudhuri17/tidytuesday/pkg/pipeline"
)

// appName names the binary and the cache directory under ~/.cache.
const appName = "tidyviz"

// Log levels re-exported so main can set verbosity without importing
// charmbracelet/log itself.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries the state every subcommand shares.
type CLI struct {
	Logger *log.Logger
}

// New builds a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel changes verbosity after flag parsing, for --verbose.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand assembles the root cobra command and its subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tidyviz renders TidyTuesday datasets as charts and maps",
		Long:         `tidyviz is a CLI tool for rendering TidyTuesday datasets: the Bechdel test ratings as a decade chart of stylized year labels, and the US post office dataset as an animated point map.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.bechdelCommand())
	root.AddCommand(c.postOfficesCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. Keys are scoped per
// dataset so both visualizations can share one cache directory.
func (c *CLI) newRunner(dataset string, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, dataset+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	// TIDYVIZ_REDIS_URL selects a shared Redis cache, for example when a
	// CI fleet renders the same datasets. The default is a local file cache.
	if url := os.Getenv("TIDYVIZ_REDIS_URL"); url != "" {
		return cache.NewRedisCache(context.Background(), url)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir resolves the cache location, honoring XDG_CACHE_HOME and
// falling back to ~/.cache/tidyviz.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
// Whitespace around elements is dropped so "svg, png" works; empty
// elements are kept for validation to reject.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

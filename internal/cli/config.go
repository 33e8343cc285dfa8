package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
	"github.com/moharchaudhuri17/tidytuesday/pkg/pipeline"
)

// Config holds the optional TOML configuration. Every field defaults to
// the pipeline's own defaults when absent; command-line flags override
// config values.
//
// Example tidyviz.toml:
//
//	style = "poster"
//	ramp = "sunset"
//	width = 1200
//
//	[glyph]
//	offset_increment = 0.05
//	emphasis_size_multiplier = 1.4
type Config struct {
	Style  string  `toml:"style"`
	Ramp   string  `toml:"ramp"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	Glyph glyph.Config `toml:"glyph"`
}

// loadConfig reads a TOML config file. A missing explicit path is an
// error; missing default-location files are not.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads the explicit config path if given, otherwise the
// first default location that exists: ./tidyviz.toml, then
// ~/.config/tidyviz/config.toml.
func resolveConfig(explicit string) (Config, error) {
	if explicit != "" {
		return loadConfig(explicit)
	}
	for _, path := range defaultConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return loadConfig(path)
		}
	}
	return Config{}, nil
}

func defaultConfigPaths() []string {
	paths := []string{appName + ".toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, appName, "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}

// applyConfig copies config values into the pipeline options wherever the
// corresponding flag was not set on the command line.
func applyConfig(cmd *cobra.Command, opts *pipeline.Options, cfg Config) {
	flags := cmd.Flags()
	if cfg.Style != "" && !flags.Changed("style") {
		opts.Style = cfg.Style
	}
	if cfg.Ramp != "" && !flags.Changed("ramp") {
		opts.Ramp = cfg.Ramp
	}
	if cfg.Width != 0 && !flags.Changed("width") {
		opts.Width = cfg.Width
	}
	if cfg.Height != 0 && flags.Lookup("height") != nil && !flags.Changed("height") {
		opts.Height = cfg.Height
	}
	if cfg.Glyph != (glyph.Config{}) {
		base := glyph.DefaultConfig()
		if cfg.Glyph.Positions != 0 {
			base.Positions = cfg.Glyph.Positions
		}
		if cfg.Glyph.OffsetIncrement != 0 {
			base.OffsetIncrement = cfg.Glyph.OffsetIncrement
		}
		if cfg.Glyph.BaseFont != "" {
			base.BaseFont = cfg.Glyph.BaseFont
		}
		if cfg.Glyph.EmphasisWeight != "" {
			base.EmphasisWeight = cfg.Glyph.EmphasisWeight
		}
		if cfg.Glyph.EmphasisSizeMultiplier != 0 {
			base.EmphasisSizeMultiplier = cfg.Glyph.EmphasisSizeMultiplier
		}
		opts.Glyph = base
	}
}

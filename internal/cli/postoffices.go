package cli

import (
	"github.com/spf13/cobra"

	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/pipeline"
)

// postOfficesCommand creates the postoffices command for rendering the map.
func (c *CLI) postOfficesCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{Dataset: dataset.PostOffices}

	cmd := &cobra.Command{
		Use:   "postoffices",
		Short: "Render the US post office map",
		Long: `Render the US post office map.

Every office operating in a given year appears as a point at its location,
colored by how many offices its state has per 100k residents. The gif
format animates the map across the year range, one frame per --step years;
svg and png show the final year.

The dataset is downloaded from the TidyTuesday repository on first use and
cached locally. Use --input to render from a local CSV instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}
			applyConfig(cmd, &opts, cfg)
			opts.Formats = parseFormats(formatsStr)
			return c.runViz(cmd.Context(), opts, output, "postoffices", noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./tidyviz.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Input, "input", "", "local CSV file instead of downloading")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-download and recompute, ignoring caches")

	// Data flags
	cmd.Flags().IntVar(&opts.FromYear, "from", 0, "first year to map (default: earliest office)")
	cmd.Flags().IntVar(&opts.ToYear, "to", 0, "last year to map (default: latest office)")
	cmd.Flags().IntVar(&opts.Step, "step", 0, "years between animation frames (default 10)")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, gif (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), poster")
	cmd.Flags().StringVar(&opts.Ramp, "ramp", "", "color ramp: ocean (default), sunset")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height in pixels")
	cmd.Flags().IntVar(&opts.FPS, "fps", 0, "animation frames per second (default 4)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "map title")

	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/observability"
	"github.com/moharchaudhuri17/tidytuesday/pkg/pipeline"
)

// bechdelCommand creates the bechdel command for rendering the decade chart.
func (c *CLI) bechdelCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{Dataset: dataset.Bechdel}

	cmd := &cobra.Command{
		Use:   "bechdel",
		Short: "Render the Bechdel test decade chart",
		Long: `Render the Bechdel test decade chart.

Each year with rated films appears as its four digits, arranged ten columns
wide with one row per decade. The digit position matching the year's median
rating is printed bold and colored by the share of films passing all three
criteria; a median between two whole scores emphasizes both neighbouring
digits.

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
			return c.runViz(cmd.Context(), opts, output, "bechdel", noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./tidyviz.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Input, "input", "", "local CSV file instead of downloading")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-download and recompute, ignoring caches")

	// Data flags
	cmd.Flags().IntVar(&opts.FromYear, "from", 0, "first year to include")
	cmd.Flags().IntVar(&opts.ToYear, "to", 0, "last year to include")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), poster")
	cmd.Flags().StringVar(&opts.Ramp, "ramp", "", "color ramp: sunset (default), ocean")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width in pixels")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.Subtitle, "subtitle", "", "chart subtitle")

	return cmd
}

// runViz executes the pipeline and writes the artifacts. Shared by the
// bechdel and postoffices commands.
func (c *CLI) runViz(ctx context.Context, opts pipeline.Options, output, defaultBase string, noCache bool) error {
	runner, err := c.newRunner(opts.Dataset, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Loading %s...", opts.Dataset))
	observability.SetPipelineHooks(stageHooks{spinner: spinner})
	defer observability.Reset()
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	for _, ye := range result.Skipped {
		printWarning("skipped year %d: %v", ye.Year, ye.Err)
	}

	return writeArtifacts(result, opts.Formats, basePath(output, defaultBase))
}

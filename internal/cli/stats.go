package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/pipeline"
	"github.com/moharchaudhuri17/tidytuesday/pkg/stats"
)

// statsCommand creates the stats command for inspecting dataset aggregates.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		input   string
		noCache bool
		refresh bool
		year    int
		top     int
	)

	cmd := &cobra.Command{
		Use:   "stats [dataset]",
		Short: "Print dataset aggregates without rendering",
		Long: `Print dataset aggregates without rendering.

For bechdel, prints the per-year median rating and pass fraction. For
postoffices, prints the most office-dense states in the given --year.`,
		ValidArgs: dataset.Names(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Dataset: args[0],
				Input:   input,
				Refresh: refresh,
			}
			return c.runStats(cmd.Context(), opts, year, top, noCache)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "local CSV file instead of downloading")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-download, ignoring caches")
	cmd.Flags().IntVar(&year, "year", 1900, "query year for post office density")
	cmd.Flags().IntVar(&top, "top", 10, "number of states to list")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, opts pipeline.Options, year, top int, noCache bool) error {
	runner, err := c.newRunner(opts.Dataset, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	p := newProgress(c.Logger)
	data, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Loaded %d rows", data.RowCount()))

	if opts.Dataset == dataset.Bechdel {
		if err := printBechdelStats(ctx, runner, data, opts); err != nil {
			return err
		}
		printNextStep("Render", "tidyviz bechdel")
		return nil
	}
	if err := printPostOfficeStats(data, year, top); err != nil {
		return err
	}
	printNextStep("Render", "tidyviz postoffices --format gif")
	return nil
}

func printBechdelStats(ctx context.Context, runner *pipeline.Runner, data pipeline.Data, opts pipeline.Options) error {
	agg, err := runner.Aggregate(ctx, data, opts)
	if err != nil {
		return err
	}
	if len(agg.Summaries) == 0 {
		printInfo("No rated films in range")
		return nil
	}

	fmt.Println(StyleTitle.Render("Bechdel test ratings by year"))
	for _, s := range agg.Summaries {
		printKeyValue(fmt.Sprintf("%d", s.Year),
			fmt.Sprintf("median %.1f · %3.0f%% pass", s.MedianScore, s.PassFraction*100))
	}
	printDetail("%d years, %d films", len(agg.Summaries), len(data.Films))
	return nil
}

func printPostOfficeStats(data pipeline.Data, year, top int) error {
	first, last := stats.YearRange(data.Offices)
	active := stats.ActiveByYear(data.Offices, year)

	fmt.Println(StyleTitle.Render(fmt.Sprintf("US post offices in %d", year)))
	printKeyValue("offices", fmt.Sprintf("%d active of %d recorded", len(active), len(data.Offices)))
	printKeyValue("records", fmt.Sprintf("%d-%d", first, last))

	counts := stats.StateDensity(data.Offices, dataset.LoadCensus(), year)
	sort.Slice(counts, func(i, j int) bool { return counts[i].PerCapita > counts[j].PerCapita })
	if top > len(counts) {
		top = len(counts)
	}
	for _, sc := range counts[:top] {
		printKeyValue(sc.State, fmt.Sprintf("%4d offices · %.1f per 100k", sc.Active, sc.PerCapita))
	}
	return nil
}

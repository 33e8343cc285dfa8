package pipeline

import (
	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/chart"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/geo"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/scale"
	"github.com/moharchaudhuri17/tidytuesday/pkg/stats"
)

// buildScenes lays out the visualization: a single decade-grid scene for
// the Bechdel chart, or one frame per step year for the post office map.
func buildScenes(data Data, agg Aggregates, opts Options) ([]render.Scene, []glyph.YearError, error) {
	ramp, err := scale.Named(opts.Ramp)
	if err != nil {
		return nil, nil, err
	}

	if opts.IsChart() {
		scene, skipped := chart.Build(stats.ByDecade(agg.Summaries), opts.Glyph, ramp, chart.Options{
			Width:    opts.Width,
			Title:    opts.Title,
			Subtitle: opts.Subtitle,
		})
		return []render.Scene{scene}, skipped, nil
	}

	frames := geo.Frames(data.Offices, dataset.LoadCensus(), agg.FromYear, agg.ToYear, opts.Step, ramp, geo.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Title:  opts.Title,
	})
	return frames, nil, nil
}

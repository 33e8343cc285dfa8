package pipeline

import (
	"strings"

	"github.com/moharchaudhuri17/tidytuesday/pkg/cache"
	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
	"github.com/moharchaudhuri17/tidytuesday/pkg/stats"
)

// Data holds the parsed rows of a loaded dataset. Exactly one of the row
// slices is populated, matching the dataset name the pipeline ran with.
type Data struct {
	// Hash is the content hash of the raw CSV, the key input for every
	// downstream cache stage.
	Hash string

	Films   []dataset.Film
	Offices []dataset.PostOffice
}

// RowCount returns the number of parsed rows.
func (d Data) RowCount() int {
	return len(d.Films) + len(d.Offices)
}

// parseData parses raw CSV text into typed rows for the named dataset.
func parseData(name, csv string) (Data, error) {
	data := Data{Hash: cache.Hash([]byte(csv))}
	var err error
	switch name {
	case dataset.Bechdel:
		data.Films, err = dataset.ParseBechdel(strings.NewReader(csv))
	case dataset.PostOffices:
		data.Offices, err = dataset.ParsePostOffices(strings.NewReader(csv))
	}
	if err != nil {
		return Data{}, err
	}
	return data, nil
}

// Aggregates holds the reduced figures a layout is built from.
type Aggregates struct {
	// Summaries are the per-year Bechdel aggregates, already filtered to
	// the requested year range.
	Summaries []glyph.YearSummary

	// FromYear and ToYear bound the map animation, resolved from the
	// options or, when unset, from the data itself.
	FromYear, ToYear int
}

// aggregate reduces parsed rows according to the dataset.
func aggregate(data Data, opts Options) Aggregates {
	if opts.IsChart() {
		summaries := stats.SummarizeBechdel(data.Films)
		return Aggregates{
			Summaries: stats.FilterYears(summaries, opts.FromYear, opts.ToYear),
		}
	}

	from, to := opts.FromYear, opts.ToYear
	first, last := stats.YearRange(data.Offices)
	if from == 0 {
		from = first
	}
	if to == 0 {
		to = last
	}
	return Aggregates{FromYear: from, ToYear: to}
}

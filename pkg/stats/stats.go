// Package stats aggregates parsed dataset rows into the per-year and
// per-state figures the charts are built from.
//
// Aggregation is separated from parsing and rendering: the dataset package
// hands over clean typed rows, this package reduces them, and the render
// packages consume the result without ever touching raw CSV. Years with no
// rows simply produce no output here, so downstream transforms never have
// to represent "no data".
package stats

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
)

// maxRating is the Bechdel rating a film needs to pass all three criteria.
const maxRating = 3

// SummarizeBechdel reduces films to one summary per year: the median rating
// and the fraction of films with the maximum rating. Years without films are
// absent from the result. Summaries are sorted by year ascending.
func SummarizeBechdel(films []dataset.Film) []glyph.YearSummary {
	byYear := make(map[int][]float64)
	passes := make(map[int]int)
	for _, f := range films {
		byYear[f.Year] = append(byYear[f.Year], float64(f.Rating))
		if f.Rating == maxRating {
			passes[f.Year]++
		}
	}

	summaries := make([]glyph.YearSummary, 0, len(byYear))
	for year, ratings := range byYear {
		sample := stats.Sample{Xs: ratings}
		summaries = append(summaries, glyph.YearSummary{
			Year:         year,
			MedianScore:  sample.Quantile(0.5),
			PassFraction: float64(passes[year]) / float64(len(ratings)),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Year < summaries[j].Year
	})
	return summaries
}

// FilterYears returns the summaries with from <= Year <= to, preserving
// order. A zero bound leaves that side open.
func FilterYears(summaries []glyph.YearSummary, from, to int) []glyph.YearSummary {
	out := make([]glyph.YearSummary, 0, len(summaries))
	for _, s := range summaries {
		if from != 0 && s.Year < from {
			continue
		}
		if to != 0 && s.Year > to {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Decade groups the year summaries falling in one ten-year span.
type Decade struct {
	// Start is the first year of the span, always a multiple of ten.
	Start int

	// Years holds the summaries of the span, sorted ascending. Years
	// without data are missing, so len(Years) may be under ten.
	Years []glyph.YearSummary
}

// ByDecade groups sorted summaries into decades, ascending by start year.
// Decades with no data are absent.
func ByDecade(summaries []glyph.YearSummary) []Decade {
	byStart := make(map[int][]glyph.YearSummary)
	for _, s := range summaries {
		start := s.Year / 10 * 10
		byStart[start] = append(byStart[start], s)
	}

	decades := make([]Decade, 0, len(byStart))
	for start, years := range byStart {
		sort.Slice(years, func(i, j int) bool {
			return years[i].Year < years[j].Year
		})
		decades = append(decades, Decade{Start: start, Years: years})
	}
	sort.Slice(decades, func(i, j int) bool {
		return decades[i].Start < decades[j].Start
	})
	return decades
}

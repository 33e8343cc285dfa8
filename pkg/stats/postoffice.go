package stats

import (
	"sort"

	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
)

// ActiveByYear returns the offices operating in the given year, meaning
// established on or before it and not yet discontinued.
func ActiveByYear(offices []dataset.PostOffice, year int) []dataset.PostOffice {
	active := make([]dataset.PostOffice, 0, len(offices))
	for _, o := range offices {
		if o.Open(year) {
			active = append(active, o)
		}
	}
	return active
}

// YearRange returns the earliest establishment year and the latest
// discontinuation year across all offices. Offices still open extend the
// upper bound to their establishment year. Returns (0, 0) for no offices.
func YearRange(offices []dataset.PostOffice) (first, last int) {
	for _, o := range offices {
		if first == 0 || o.Established < first {
			first = o.Established
		}
		hi := o.Discontinued
		if hi == 0 {
			hi = o.Established
		}
		if hi > last {
			last = hi
		}
	}
	return first, last
}

// StateCount is the office density figure for one state.
type StateCount struct {
	// State is the two-letter postal abbreviation.
	State string

	// Active is the number of offices open in the queried year.
	Active int

	// PerCapita is active offices per 100k residents, zero when no
	// population figure exists for the state.
	PerCapita float64
}

// StateDensity counts active offices per state for the given year and
// normalizes into offices per 100k residents using the census decade
// nearest that year, so an 1800 frame divides by 1800 populations rather
// than modern ones. States not enumerated in that decade keep a zero
// PerCapita. Results are sorted by state abbreviation.
func StateDensity(offices []dataset.PostOffice, census *dataset.Census, year int) []StateCount {
	active := make(map[string]int)
	for _, o := range offices {
		if o.Open(year) {
			active[o.State]++
		}
	}

	counts := make([]StateCount, 0, len(active))
	for state, n := range active {
		c := StateCount{State: state, Active: n}
		if pop := census.Population(state, year); pop > 0 {
			c.PerCapita = float64(n) / float64(pop) * 100_000
		}
		counts = append(counts, c)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].State < counts[j].State
	})
	return counts
}

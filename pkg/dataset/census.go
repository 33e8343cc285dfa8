package dataset

import (
	"bytes"
	"encoding/csv"
	_ "embed"
	"io"
	"sort"
	"strconv"
	"sync"
)

// census.csv holds resident populations per state from every decennial
// census between 1790 and 2000, one column per decade. A blank cell means
// the state was not enumerated that decade. The post office record ends
// in 2000, so the table stops there.

//go:embed census.csv
var censusCSV []byte

// Census is a decennial population table. Lookups resolve a query year to
// the nearest enumerated decade, so early map frames divide by the
// populations of their own era rather than a modern baseline.
type Census struct {
	decades  []int
	byDecade map[int]map[string]int
}

// NewCensus builds a table from per-decade population maps keyed by
// two-letter state code. The maps are used as given and must not be
// mutated afterwards.
func NewCensus(byDecade map[int]map[string]int) *Census {
	c := &Census{byDecade: byDecade}
	for d := range byDecade {
		c.decades = append(c.decades, d)
	}
	sort.Ints(c.decades)
	return c
}

// NearestDecade returns the enumerated decade closest to year, with ties
// going to the later decade. Years outside the table clamp to its first or
// last decade. Returns 0 for an empty table.
func (c *Census) NearestDecade(year int) int {
	best := 0
	for _, d := range c.decades {
		if best == 0 || abs(d-year) <= abs(best-year) {
			best = d
		}
	}
	return best
}

// Population returns the state's population at the census nearest the
// given year, or 0 when the state was not enumerated that decade.
func (c *Census) Population(state string, year int) int {
	return c.byDecade[c.NearestDecade(year)][state]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var (
	census     *Census
	censusOnce sync.Once
)

// LoadCensus returns the embedded decennial census table. The table is
// parsed once and shared; callers must treat it as read-only.
func LoadCensus() *Census {
	censusOnce.Do(func() {
		census = parseCensus(censusCSV)
	})
	return census
}

func parseCensus(raw []byte) *Census {
	cr := csv.NewReader(bytes.NewReader(raw))
	header, err := cr.Read()
	if err != nil || len(header) < 2 {
		return NewCensus(nil)
	}

	decades := make([]int, len(header))
	byDecade := make(map[int]map[string]int, len(header)-1)
	for i, col := range header[1:] {
		d, err := strconv.Atoi(col)
		if err != nil {
			continue
		}
		decades[i+1] = d
		byDecade[d] = make(map[string]int, 51)
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(rec) != len(header) {
			continue
		}
		for i, cell := range rec[1:] {
			if cell == "" || decades[i+1] == 0 {
				continue
			}
			if n, err := strconv.Atoi(cell); err == nil {
				byDecade[decades[i+1]][rec[0]] = n
			}
		}
	}
	return NewCensus(byDecade)
}

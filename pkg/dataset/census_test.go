package dataset

import "testing"

func TestCensusNearestDecade(t *testing.T) {
	c := LoadCensus()
	tests := []struct {
		year int
		want int
	}{
		{1764, 1790}, // earliest office predates the first census
		{1790, 1790},
		{1804, 1800},
		{1806, 1810},
		{1805, 1810}, // midpoint rounds up
		{1955, 1960},
		{2000, 2000},
		{2024, 2000},
	}

	for _, tt := range tests {
		if got := c.NearestDecade(tt.year); got != tt.want {
			t.Errorf("NearestDecade(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestCensusPopulation(t *testing.T) {
	c := LoadCensus()
	tests := []struct {
		state string
		year  int
		want  int
	}{
		{"CA", 2000, 33871648},
		{"CA", 1998, 33871648}, // resolves to the 2000 census
		{"CA", 1850, 92597},
		{"CA", 1800, 0}, // not enumerated before 1850
		{"KS", 1860, 107206},
		{"VA", 1790, 747610},
		{"WY", 2000, 493782},
		{"ZZ", 2000, 0},
	}

	for _, tt := range tests {
		if got := c.Population(tt.state, tt.year); got != tt.want {
			t.Errorf("Population(%q, %d) = %d, want %d", tt.state, tt.year, got, tt.want)
		}
	}
}

func TestCensusCoversEveryDecade(t *testing.T) {
	c := LoadCensus()
	for year := 1790; year <= 2000; year += 10 {
		if got := c.NearestDecade(year); got != year {
			t.Errorf("decade %d missing, nearest = %d", year, got)
		}
	}
	// The 13 original states appear in the very first census.
	if c.Population("NY", 1790) == 0 || c.Population("PA", 1790) == 0 {
		t.Error("1790 census missing the original states")
	}
}

func TestNewCensusEmpty(t *testing.T) {
	c := NewCensus(nil)
	if got := c.NearestDecade(1900); got != 0 {
		t.Errorf("NearestDecade on empty table = %d, want 0", got)
	}
	if got := c.Population("KS", 1900); got != 0 {
		t.Errorf("Population on empty table = %d, want 0", got)
	}
}

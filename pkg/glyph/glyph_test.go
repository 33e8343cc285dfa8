package glyph

import (
	"math"
	"testing"

	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
)

func TestEncodeIntegerMedian(t *testing.T) {
	// year=1997, median=3, pass=0.42: only position 3 emphasized.
	styles, err := Encode(YearSummary{Year: 1997, MedianScore: 3, PassFraction: 0.42}, DefaultConfig())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(styles) != 4 {
		t.Fatalf("got %d styles, want 4", len(styles))
	}

	wantChars := "1997"
	for k, s := range styles {
		if s.Char != wantChars[k] {
			t.Errorf("position %d: char = %c, want %c", k, s.Char, wantChars[k])
		}
		if s.Position != k {
			t.Errorf("position field = %d, want %d", s.Position, k)
		}
		if s.Year != 1997 {
			t.Errorf("year field = %d", s.Year)
		}
	}

	for k := 0; k < 3; k++ {
		if styles[k].Emphasized {
			t.Errorf("position %d should not be emphasized", k)
		}
		if styles[k].HasColor {
			t.Errorf("position %d should have no color", k)
		}
	}
	if !styles[3].Emphasized {
		t.Error("position 3 should be emphasized")
	}
	if !styles[3].HasColor || styles[3].ColorValue != 0.42 {
		t.Errorf("position 3 color = (%v, %v), want (true, 0.42)", styles[3].HasColor, styles[3].ColorValue)
	}
}

func TestEncodeFractionalMedian(t *testing.T) {
	// year=1920, median=1.5, pass=0.10: positions 1 and 2 emphasized.
	styles, err := Encode(YearSummary{Year: 1920, MedianScore: 1.5, PassFraction: 0.10}, DefaultConfig())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	wantEmphasis := []bool{false, true, true, false}
	for k, want := range wantEmphasis {
		if styles[k].Emphasized != want {
			t.Errorf("position %d: emphasized = %v, want %v", k, styles[k].Emphasized, want)
		}
		if styles[k].HasColor != want {
			t.Errorf("position %d: hasColor = %v, want %v", k, styles[k].HasColor, want)
		}
	}
	if styles[1].ColorValue != 0.10 || styles[2].ColorValue != 0.10 {
		t.Errorf("emphasized colors = %v, %v, want 0.10 both", styles[1].ColorValue, styles[2].ColorValue)
	}
	if styles[1].Char != '9' || styles[2].Char != '2' {
		t.Errorf("emphasized chars = %c, %c, want 9, 2", styles[1].Char, styles[2].Char)
	}
}

func TestEncodeZeroMedian(t *testing.T) {
	// median=0 emphasizes only position 0, for any pass fraction.
	for _, pass := range []float64{0.0, 0.5, 1.0} {
		styles, err := Encode(YearSummary{Year: 1890, MedianScore: 0, PassFraction: pass}, DefaultConfig())
		if err != nil {
			t.Fatalf("Encode(pass=%v): %v", pass, err)
		}
		if !styles[0].Emphasized {
			t.Errorf("pass=%v: position 0 should be emphasized", pass)
		}
		for k := 1; k < 4; k++ {
			if styles[k].Emphasized {
				t.Errorf("pass=%v: position %d should not be emphasized", pass, k)
			}
		}
		if styles[0].ColorValue != pass {
			t.Errorf("pass=%v: color = %v", pass, styles[0].ColorValue)
		}
	}
}

func TestEncodeEmphasisCount(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		median float64
		want   int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 1},
		{0.5, 2},
		{1.25, 2},
		{2.5, 2},
		{2.9, 2},
	}

	for _, tt := range tests {
		styles, err := Encode(YearSummary{Year: 1950, MedianScore: tt.median, PassFraction: 0.3}, cfg)
		if err != nil {
			t.Fatalf("Encode(median=%v): %v", tt.median, err)
		}
		count := 0
		for _, s := range styles {
			if s.Emphasized {
				count++
			}
			if s.Emphasized != s.HasColor {
				t.Errorf("median=%v pos=%d: emphasis and color must agree", tt.median, s.Position)
			}
		}
		if count != tt.want {
			t.Errorf("median=%v: %d emphasized positions, want %d", tt.median, count, tt.want)
		}
	}
}

func TestEncodeOffsetsStrictlyIncreasing(t *testing.T) {
	cfg := DefaultConfig()
	for _, median := range []float64{0, 0.5, 1, 1.5, 2, 2.5, 3} {
		styles, err := Encode(YearSummary{Year: 1977, MedianScore: median, PassFraction: 0.5}, cfg)
		if err != nil {
			t.Fatalf("Encode(median=%v): %v", median, err)
		}
		for k := 1; k < len(styles); k++ {
			if styles[k].Offset <= styles[k-1].Offset {
				t.Errorf("median=%v: offset[%d]=%v not greater than offset[%d]=%v",
					median, k, styles[k].Offset, k-1, styles[k-1].Offset)
			}
		}
	}
}

func TestEncodeOffsetAccumulation(t *testing.T) {
	// Adjacent emphasized digits (median 1.5) push all following digits
	// right by a cumulative increment.
	styles, err := Encode(YearSummary{Year: 1920, MedianScore: 1.5, PassFraction: 0.1}, DefaultConfig())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	const inc = 0.04
	wantOffsets := []float64{0, 0.1, 0.2 + inc, 0.3 + 2*inc}
	for k, want := range wantOffsets {
		if diff := styles[k].Offset - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("offset[%d] = %v, want %v", k, styles[k].Offset, want)
		}
	}
}

func TestEncodeInvalidRange(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		sum  YearSummary
	}{
		{"median above axis", YearSummary{Year: 1997, MedianScore: 4, PassFraction: 0.5}},
		{"median negative", YearSummary{Year: 1997, MedianScore: -0.5, PassFraction: 0.5}},
		{"pass fraction above one", YearSummary{Year: 1997, MedianScore: 2, PassFraction: 1.5}},
		{"pass fraction negative", YearSummary{Year: 1997, MedianScore: 2, PassFraction: -0.1}},
		{"median NaN", YearSummary{Year: 1997, MedianScore: math.NaN(), PassFraction: 0.5}},
		{"pass fraction NaN", YearSummary{Year: 1997, MedianScore: 2, PassFraction: math.NaN()}},
		{"three-digit year", YearSummary{Year: 999, MedianScore: 2, PassFraction: 0.5}},
		{"five-digit year", YearSummary{Year: 10000, MedianScore: 2, PassFraction: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.sum, cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidRange) {
				t.Errorf("error code = %q, want INVALID_RANGE", errors.GetCode(err))
			}
		})
	}
}

func TestEncodeBoundaryMedians(t *testing.T) {
	cfg := DefaultConfig()

	// median exactly at the last position is valid.
	styles, err := Encode(YearSummary{Year: 2021, MedianScore: 3, PassFraction: 1}, cfg)
	if err != nil {
		t.Fatalf("Encode(median=3): %v", err)
	}
	if !styles[3].Emphasized {
		t.Error("position 3 should be emphasized for median 3")
	}

	// just below the last position emphasizes positions 2 and 3.
	styles, err = Encode(YearSummary{Year: 2021, MedianScore: 2.999, PassFraction: 0}, cfg)
	if err != nil {
		t.Fatalf("Encode(median=2.999): %v", err)
	}
	if !styles[2].Emphasized || !styles[3].Emphasized {
		t.Error("positions 2 and 3 should be emphasized for median 2.999")
	}
}

func TestEncodeCustomPositions(t *testing.T) {
	// A two-digit axis on a two-digit "year" works when they coincide.
	cfg := Config{Positions: 2, OffsetIncrement: 0.04}
	styles, err := Encode(YearSummary{Year: 42, MedianScore: 1, PassFraction: 0.5}, cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(styles) != 2 {
		t.Fatalf("got %d styles, want 2", len(styles))
	}
	if !styles[1].Emphasized {
		t.Error("position 1 should be emphasized")
	}
}

func TestEncodeAll(t *testing.T) {
	cfg := DefaultConfig()
	sums := []YearSummary{
		{Year: 1997, MedianScore: 3, PassFraction: 0.42},
		{Year: 1998, MedianScore: 9, PassFraction: 0.5}, // invalid
		{Year: 1999, MedianScore: 1.5, PassFraction: 0.3},
	}

	styled, failed := EncodeAll(sums, cfg)
	if len(styled) != 2 {
		t.Errorf("got %d styled years, want 2", len(styled))
	}
	if len(failed) != 1 {
		t.Fatalf("got %d failures, want 1", len(failed))
	}
	if failed[0].Year != 1998 {
		t.Errorf("failed year = %d, want 1998", failed[0].Year)
	}
	if !errors.Is(failed[0], errors.ErrCodeInvalidRange) {
		t.Error("failure should unwrap to INVALID_RANGE")
	}

	// One bad year does not disturb its neighbours.
	if styled[0][0].Year != 1997 || styled[1][0].Year != 1999 {
		t.Errorf("styled years = %d, %d", styled[0][0].Year, styled[1][0].Year)
	}
}

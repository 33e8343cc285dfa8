// Package glyph converts per-year summary statistics into per-character
// styling records for stylized year labels.
//
// The Bechdel chart prints each year as its four digits and uses the digits
// themselves as a tiny in-place scale: the digit position matching the
// year's median score is printed bold, tinted by the share of films that
// pass all three criteria. A median of 1.5 falls between two positions, so
// both neighbours are bold. [Encode] computes that styling per digit;
// rendering is left to the chart layer.
//
// The transform is a pure function. It never clamps out-of-range inputs:
// a clamped value would silently misrepresent the year, so Encode fails
// with an INVALID_RANGE error instead and the caller decides whether to
// skip the year or abort.
package glyph

import (
	"math"
	"strconv"

	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
)

// YearSummary is the aggregated statistic for one calendar year.
// Instances are produced by the stats package and are not modified after
// creation.
type YearSummary struct {
	// Year is the four-digit calendar year.
	Year int `json:"year"`

	// MedianScore is the median rating across all films of the year,
	// in [0, positions-1].
	MedianScore float64 `json:"median_score"`

	// PassFraction is the share of films achieving the maximum score,
	// in [0, 1].
	PassFraction float64 `json:"pass_fraction"`
}

// Style describes how a single digit of a year label is drawn.
type Style struct {
	// Year is the year this digit belongs to.
	Year int `json:"year"`

	// Position is the 0-indexed digit position within the year.
	Position int `json:"position"`

	// Char is the decimal digit character at this position.
	Char byte `json:"char"`

	// Emphasized marks the digit for bold rendering.
	Emphasized bool `json:"emphasized"`

	// ColorValue is the pass fraction driving the color scale.
	// Only meaningful when HasColor is true.
	ColorValue float64 `json:"color_value,omitempty"`

	// HasColor reports whether ColorValue is set. Digits without color
	// render in the style's fixed neutral color.
	HasColor bool `json:"has_color"`

	// Offset is the horizontal offset of this digit in label units.
	// Offsets are strictly increasing within a year.
	Offset float64 `json:"offset"`
}

// Config carries the styling knobs for the transform and the chart layer.
// It replaces what were free-floating style globals in earlier script
// versions of this visualization.
type Config struct {
	// Positions is the number of digit positions used as the emphasis
	// axis. It must match the digit count of the encoded years; Encode
	// rejects years with a different digit count rather than assuming
	// the score range and the digit count coincide.
	Positions int `toml:"positions"`

	// OffsetIncrement is the extra horizontal spacing added after each
	// emphasized digit so the bold glyph does not collide with its
	// neighbour. Accumulates across a year, resets between years.
	OffsetIncrement float64 `toml:"offset_increment"`

	// BaseFont is the font family used for neutral digits.
	BaseFont string `toml:"base_font"`

	// EmphasisWeight is the font weight for emphasized digits.
	EmphasisWeight string `toml:"emphasis_weight"`

	// EmphasisSizeMultiplier scales emphasized digits relative to the
	// base size.
	EmphasisSizeMultiplier float64 `toml:"emphasis_size_multiplier"`
}

// DefaultConfig returns the configuration used by the Bechdel chart:
// four positions matching the 0-3 rating scale on four-digit years.
func DefaultConfig() Config {
	return Config{
		Positions:              4,
		OffsetIncrement:        0.04,
		BaseFont:               "Courier New",
		EmphasisWeight:         "bold",
		EmphasisSizeMultiplier: 1.3,
	}
}

// positionSpacing is the base horizontal distance between adjacent digits,
// in label units.
const positionSpacing = 0.1

// Encode produces the ordered digit styles for one year.
//
// The digit at position floor(MedianScore) and the digit at position
// ceil(MedianScore) are emphasized; for whole-number medians those are the
// same digit. Emphasized digits carry PassFraction as their color value.
// Every digit after an emphasized one is pushed right by a cumulative
// OffsetIncrement on top of the regular spacing, so offsets are strictly
// increasing.
//
// Encode returns an INVALID_RANGE error when MedianScore lies outside
// [0, cfg.Positions-1], PassFraction lies outside [0, 1], or the year's
// digit count differs from cfg.Positions. It has no other failure modes
// and no side effects.
func Encode(sum YearSummary, cfg Config) ([]Style, error) {
	digits := strconv.Itoa(sum.Year)
	if len(digits) != cfg.Positions {
		return nil, errors.New(errors.ErrCodeInvalidRange,
			"year %d has %d digits, emphasis axis has %d positions",
			sum.Year, len(digits), cfg.Positions)
	}
	// NaN compares false against every bound, so it needs its own check
	// before the range tests.
	if math.IsNaN(sum.MedianScore) || sum.MedianScore < 0 || sum.MedianScore > float64(cfg.Positions-1) {
		return nil, errors.New(errors.ErrCodeInvalidRange,
			"median score %.2f for year %d outside [0, %d]",
			sum.MedianScore, sum.Year, cfg.Positions-1)
	}
	if math.IsNaN(sum.PassFraction) || sum.PassFraction < 0 || sum.PassFraction > 1 {
		return nil, errors.New(errors.ErrCodeInvalidRange,
			"pass fraction %.3f for year %d outside [0, 1]",
			sum.PassFraction, sum.Year)
	}

	lower := int(math.Floor(sum.MedianScore))
	upper := int(math.Ceil(sum.MedianScore))

	out := make([]Style, len(digits))
	extra := 0.0
	for k := 0; k < len(digits); k++ {
		// Spacing added by earlier emphasized digits carries forward
		// for the rest of the year.
		if k > 0 && out[k-1].Emphasized {
			extra += cfg.OffsetIncrement
		}

		s := Style{
			Year:     sum.Year,
			Position: k,
			Char:     digits[k],
			Offset:   float64(k)*positionSpacing + extra,
		}
		if k == lower || k == upper {
			s.Emphasized = true
			s.ColorValue = sum.PassFraction
			s.HasColor = true
		}
		out[k] = s
	}
	return out, nil
}

// EncodeAll encodes a batch of year summaries. Years that fail validation
// are returned in a separate slice along with their errors; valid years are
// unaffected by invalid neighbours.
func EncodeAll(sums []YearSummary, cfg Config) ([][]Style, []YearError) {
	var styled [][]Style
	var failed []YearError
	for _, sum := range sums {
		s, err := Encode(sum, cfg)
		if err != nil {
			failed = append(failed, YearError{Year: sum.Year, Err: err})
			continue
		}
		styled = append(styled, s)
	}
	return styled, failed
}

// YearError pairs a year with the validation error it produced.
type YearError struct {
	Year int
	Err  error
}

// Error implements the error interface.
func (e YearError) Error() string { return strconv.Itoa(e.Year) + ": " + e.Err.Error() }

// Unwrap returns the underlying validation error.
func (e YearError) Unwrap() error { return e.Err }

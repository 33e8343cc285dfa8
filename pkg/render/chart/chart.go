// Package chart lays out the Bechdel decade grid: one stylized year label
// per year with data, arranged ten columns wide with one row per decade.
// Each label's digits come straight from the glyph transform; this package
// only maps the transform's unit offsets into canvas coordinates.
package chart

import (
	"fmt"

	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/scale"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/styles"
	"github.com/moharchaudhuri17/tidytuesday/pkg/stats"
)

const (
	columns = 10

	defaultWidth = 1000.0
	rowHeight    = 64.0
	marginX      = 56.0
	titleBand    = 84.0
	legendBand   = 72.0
	legendWidth  = 240.0
	legendHeight = 12.0

	baseFontSize = 17.0
	titleSize    = 26.0
	subtitleSize = 13.0
	rowLabelSize = 12.0

	// offsetSpread maps the transform's unit offsets (position/10 plus
	// emphasis increments) onto the cell width. The offsets themselves
	// carry the emphasis spacing, so the mapping must stay linear.
	offsetSpread = 1.9

	legendSwatches = 24
)

// Options controls the chart frame around the decade grid.
type Options struct {
	// Width is the canvas width in pixels, default 1000.
	Width float64

	// Title and Subtitle are drawn in the top band. Empty strings fall
	// back to the standard captions.
	Title    string
	Subtitle string
}

// Build lays out the decade grid for the given summaries. Years the glyph
// transform rejects are skipped and reported in the second return; the
// scene always covers the remaining years.
func Build(decades []stats.Decade, cfg glyph.Config, ramp scale.Ramp, opts Options) (render.Scene, []glyph.YearError) {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	title := opts.Title
	if title == "" {
		title = "Bechdel Test Ratings by Year"
	}
	subtitle := opts.Subtitle
	if subtitle == "" {
		subtitle = "bold digit marks the median rating, its color the share of films passing"
	}

	height := titleBand + float64(len(decades))*rowHeight + legendBand
	scene := render.Scene{Width: width, Height: height}

	scene.Texts = append(scene.Texts,
		styles.Text{Content: title, X: marginX, Y: 40, Size: titleSize},
		styles.Text{Content: subtitle, X: marginX, Y: 62, Size: subtitleSize, Muted: true},
	)

	cellW := (width - 2*marginX) / columns
	var skipped []glyph.YearError

	for row, decade := range decades {
		rowTop := titleBand + float64(row)*rowHeight
		baseline := rowTop + rowHeight/2 + baseFontSize/2

		scene.Texts = append(scene.Texts, styles.Text{
			Content: fmt.Sprintf("%ds", decade.Start),
			X:       marginX - 10,
			Y:       baseline,
			Size:    rowLabelSize,
			Anchor:  "end",
			Muted:   true,
		})

		for _, summary := range decade.Years {
			digits, err := glyph.Encode(summary, cfg)
			if err != nil {
				skipped = append(skipped, glyph.YearError{Year: summary.Year, Err: err})
				continue
			}
			col := summary.Year % 10
			cellX := marginX + float64(col)*cellW
			scene.Glyphs = append(scene.Glyphs, placeDigits(digits, cfg, ramp, cellX, cellW, baseline)...)
		}
	}

	scene.Legend = &styles.Legend{
		X:        width - marginX - legendWidth,
		Y:        height - legendBand + 18,
		W:        legendWidth,
		H:        legendHeight,
		Swatches: swatches(ramp, legendSwatches),
		MinLabel: "0% pass",
		MaxLabel: "100% pass",
		Title:    "share of films passing all three criteria",
	}
	return scene, skipped
}

// placeDigits maps one year's digit styles into canvas glyphs. The unit
// offset of each digit scales linearly into the cell so the emphasis
// spacing survives the projection.
func placeDigits(digits []glyph.Style, cfg glyph.Config, ramp scale.Ramp, cellX, cellW, baseline float64) []styles.Glyph {
	glyphs := make([]styles.Glyph, 0, len(digits))
	for _, d := range digits {
		g := styles.Glyph{
			Char: d.Char,
			X:    cellX + d.Offset*cellW*offsetSpread,
			Y:    baseline,
			Size: baseFontSize,
			Bold: d.Emphasized,
			Font: cfg.BaseFont,
		}
		if d.Emphasized {
			g.Size = baseFontSize * cfg.EmphasisSizeMultiplier
			g.Weight = cfg.EmphasisWeight
		}
		if d.HasColor {
			g.Color = ramp.Hex(d.ColorValue)
		}
		glyphs = append(glyphs, g)
	}
	return glyphs
}

func swatches(ramp scale.Ramp, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = ramp.Hex(float64(i) / float64(n-1))
	}
	return out
}

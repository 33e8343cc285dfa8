package render

import "github.com/moharchaudhuri17/tidytuesday/pkg/render/styles"

// Scene is a fully laid-out chart: every element carries its final canvas
// position and color, so drawing it is a straight pass over the slices.
// Scenes are produced by the chart and geo packages and consumed by the
// sink package.
type Scene struct {
	// Width and Height are the canvas size in pixels.
	Width, Height float64

	// Glyphs are the styled year digits, empty for map scenes.
	Glyphs []styles.Glyph

	// Points are the map markers, empty for chart scenes.
	Points []styles.Point

	// Texts are titles, captions, and row labels.
	Texts []styles.Text

	// Legend is the color-scale bar, nil when the scene has none.
	Legend *styles.Legend

	// Label identifies the scene in multi-frame output, e.g. the year
	// of a map frame.
	Label string
}

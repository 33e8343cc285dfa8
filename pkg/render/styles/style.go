// Package styles defines the visual styles a chart scene can be drawn in.
// A style turns scene elements into SVG fragments; the surrounding
// document structure is owned by the render package.
package styles

import "bytes"

// Style defines the visual appearance for chart rendering.
// Implementations control how glyphs, points, text, and the legend are
// drawn.
type Style interface {
	// Name returns the style's registry name.
	Name() string
	// Theme returns the style's base colors for raster output.
	Theme() Theme
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the canvas background.
	RenderBackground(buf *bytes.Buffer, width, height float64)
	// RenderGlyph writes the SVG for a single styled digit.
	RenderGlyph(buf *bytes.Buffer, g Glyph)
	// RenderPoint writes the SVG for a map marker.
	RenderPoint(buf *bytes.Buffer, p Point)
	// RenderText writes the SVG for a title or caption.
	RenderText(buf *bytes.Buffer, t Text)
	// RenderLegend writes the SVG for a color-scale legend.
	RenderLegend(buf *bytes.Buffer, l Legend)
}

// Theme is a style's base palette. The raster sinks draw from it directly
// instead of going through SVG.
type Theme struct {
	Background string // Canvas fill
	Neutral    string // Unemphasized glyphs and muted text
	Ink        string // Titles and labels
}

// Glyph contains all data needed to render a single digit of a year label.
type Glyph struct {
	Char   byte    // Digit character
	X, Y   float64 // Baseline anchor, middle-anchored horizontally
	Size   float64 // Font size in canvas units
	Bold   bool    // Emphasized digit
	Color  string  // Fill as "#rrggbb", empty for the style's neutral
	Font   string  // Font family, empty for the style's default
	Weight string  // Weight of emphasized digits, empty means "bold"
}

// glyphFont resolves a glyph's font family, falling back to the style's
// own family when the scene carries none.
func glyphFont(g Glyph, styleFont string) string {
	if g.Font != "" {
		return g.Font
	}
	return styleFont
}

// glyphWeight resolves the font-weight attribute for a glyph.
func glyphWeight(g Glyph) string {
	if !g.Bold {
		return "normal"
	}
	if g.Weight != "" {
		return g.Weight
	}
	return "bold"
}

// Point contains positioning data for a map marker.
type Point struct {
	X, Y   float64
	Radius float64
	Color  string // Fill as "#rrggbb"
}

// Text is a non-data label: title, subtitle, axis caption.
type Text struct {
	Content string
	X, Y    float64
	Size    float64
	Anchor  string // "start", "middle", or "end"; empty means "start"
	Muted   bool   // Secondary text, drawn fainter
}

// Legend describes a horizontal color-scale bar built from discrete
// swatches.
type Legend struct {
	X, Y, W, H float64
	Swatches   []string // Left-to-right fill colors
	MinLabel   string
	MaxLabel   string
	Title      string
}

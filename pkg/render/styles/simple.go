package styles

import (
	"bytes"
	"fmt"
)

const (
	simpleBackground = "#fffdf7"
	simpleNeutral    = "#9a9a92"
	simpleInk        = "#3a3a35"
	simpleFont       = "Courier New, monospace"
)

// Simple is a flat, light style: cream background, monospaced digits,
// no decoration. The default for every chart.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Theme() Theme {
	return Theme{Background: simpleBackground, Neutral: simpleNeutral, Ink: simpleInk}
}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		width, height, simpleBackground)
}

func (Simple) RenderGlyph(buf *bytes.Buffer, g Glyph) {
	fill := g.Color
	if fill == "" {
		fill = simpleNeutral
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" font-weight="%s" fill="%s" text-anchor="middle">%c</text>`+"\n",
		g.X, g.Y, glyphFont(g, simpleFont), g.Size, glyphWeight(g), fill, g.Char)
}

func (Simple) RenderPoint(buf *bytes.Buffer, p Point) {
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.8"/>`+"\n",
		p.X, p.Y, p.Radius, p.Color)
}

func (Simple) RenderText(buf *bytes.Buffer, t Text) {
	fill := simpleInk
	if t.Muted {
		fill = simpleNeutral
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" fill="%s" text-anchor="%s">%s</text>`+"\n",
		t.X, t.Y, simpleFont, t.Size, fill, anchor(t), EscapeXML(t.Content))
}

func (s Simple) RenderLegend(buf *bytes.Buffer, l Legend) {
	renderLegendBar(buf, s, l)
}

// renderLegendBar draws a swatch strip with min/max labels. Both styles
// share the geometry; label colors come from the style's RenderText.
func renderLegendBar(buf *bytes.Buffer, s Style, l Legend) {
	if len(l.Swatches) == 0 {
		return
	}
	sw := l.W / float64(len(l.Swatches))
	for i, c := range l.Swatches {
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			l.X+float64(i)*sw, l.Y, sw+0.5, l.H, c)
	}
	if l.Title != "" {
		s.RenderText(buf, Text{
			Content: l.Title,
			X:       l.X + l.W/2,
			Y:       l.Y - legendPad - 2,
			Size:    labelSizeSmall,
			Anchor:  "middle",
		})
	}
	s.RenderText(buf, Text{
		Content: l.MinLabel,
		X:       l.X,
		Y:       l.Y + l.H + labelSizeSmall + legendPad,
		Size:    labelSizeSmall,
		Anchor:  "start",
		Muted:   true,
	})
	s.RenderText(buf, Text{
		Content: l.MaxLabel,
		X:       l.X + l.W,
		Y:       l.Y + l.H + labelSizeSmall + legendPad,
		Size:    labelSizeSmall,
		Anchor:  "end",
		Muted:   true,
	})
}

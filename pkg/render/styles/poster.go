package styles

import (
	"bytes"
	"fmt"
)

const (
	posterBackground = "#12101c"
	posterNeutral    = "#4d4a5e"
	posterInk        = "#e8e5f2"
	posterFont       = "Courier New, monospace"
)

// Poster is a dark presentation style: near-black background, pale
// neutral digits, and a soft glow behind emphasized glyphs so the colored
// digits read from across a room.
type Poster struct{}

func (Poster) Name() string { return "poster" }

func (Poster) Theme() Theme {
	return Theme{Background: posterBackground, Neutral: posterNeutral, Ink: posterInk}
}

func (Poster) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="glow" x="-50%" y="-50%" width="200%" height="200%">
      <feGaussianBlur stdDeviation="2.5" result="blur"/>
      <feMerge>
        <feMergeNode in="blur"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
  </defs>
`)
}

func (Poster) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		width, height, posterBackground)
}

func (Poster) RenderGlyph(buf *bytes.Buffer, g Glyph) {
	fill := g.Color
	filter := ""
	if fill == "" {
		fill = posterNeutral
	} else {
		filter = ` filter="url(#glow)"`
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" font-weight="%s" fill="%s" text-anchor="middle"%s>%c</text>`+"\n",
		g.X, g.Y, glyphFont(g, posterFont), g.Size, glyphWeight(g), fill, filter, g.Char)
}

func (Poster) RenderPoint(buf *bytes.Buffer, p Point) {
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.9" filter="url(#glow)"/>`+"\n",
		p.X, p.Y, p.Radius, p.Color)
}

func (Poster) RenderText(buf *bytes.Buffer, t Text) {
	fill := posterInk
	if t.Muted {
		fill = posterNeutral
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" fill="%s" text-anchor="%s">%s</text>`+"\n",
		t.X, t.Y, posterFont, t.Size, fill, anchor(t), EscapeXML(t.Content))
}

func (p Poster) RenderLegend(buf *bytes.Buffer, l Legend) {
	renderLegendBar(buf, p, l)
}

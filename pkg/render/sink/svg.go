// Package sink encodes laid-out scenes into output formats. SVG goes
// through the style's fragment renderers; PNG and GIF rasterize the same
// scene with fogleman/gg so every format shows the same layout.
package sink

import (
	"bytes"
	"fmt"

	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/styles"
)

// SVG renders the scene as a standalone SVG document.
func SVG(scene render.Scene, style styles.Style) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		scene.Width, scene.Height, scene.Width, scene.Height)

	style.RenderDefs(&buf)
	style.RenderBackground(&buf, scene.Width, scene.Height)

	for _, p := range scene.Points {
		style.RenderPoint(&buf, p)
	}
	for _, g := range scene.Glyphs {
		style.RenderGlyph(&buf, g)
	}
	for _, t := range scene.Texts {
		style.RenderText(&buf, t)
	}
	if scene.Legend != nil {
		style.RenderLegend(&buf, *scene.Legend)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

package sink

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/styles"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *truetype.Font
	boldFont    *truetype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = truetype.Parse(gobold.TTF)
	})
	return fontErr
}

func face(bold bool, size float64) font.Face {
	f := regularFont
	if bold {
		f = boldFont
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// PNG rasterizes the scene and encodes it as PNG. The style contributes
// its base palette; element colors come from the scene itself. Raster
// output draws with the embedded Go fonts, so a glyph's font family and
// weight collapse to the regular or bold face. The SVG sink honors them
// literally.
func PNG(scene render.Scene, style styles.Style) ([]byte, error) {
	img, err := rasterize(scene, style)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return buf.Bytes(), nil
}

func rasterize(scene render.Scene, style styles.Style) (image.Image, error) {
	if err := loadFonts(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "loading fonts")
	}
	theme := style.Theme()

	dc := gg.NewContext(int(scene.Width), int(scene.Height))
	dc.SetHexColor(theme.Background)
	dc.Clear()

	for _, p := range scene.Points {
		dc.SetHexColor(p.Color)
		dc.DrawCircle(p.X, p.Y, p.Radius)
		dc.Fill()
	}

	for _, g := range scene.Glyphs {
		fill := g.Color
		if fill == "" {
			fill = theme.Neutral
		}
		dc.SetHexColor(fill)
		dc.SetFontFace(face(g.Bold, g.Size))
		dc.DrawStringAnchored(string(g.Char), g.X, g.Y, 0.5, 0)
	}

	for _, t := range scene.Texts {
		fill := theme.Ink
		if t.Muted {
			fill = theme.Neutral
		}
		dc.SetHexColor(fill)
		dc.SetFontFace(face(false, t.Size))
		dc.DrawStringAnchored(t.Content, t.X, t.Y, anchorX(t.Anchor), 0)
	}

	if l := scene.Legend; l != nil && len(l.Swatches) > 0 {
		sw := l.W / float64(len(l.Swatches))
		for i, c := range l.Swatches {
			dc.SetHexColor(c)
			dc.DrawRectangle(l.X+float64(i)*sw, l.Y, sw+0.5, l.H)
			dc.Fill()
		}
		dc.SetFontFace(face(false, 11))
		dc.SetHexColor(theme.Ink)
		if l.Title != "" {
			dc.DrawStringAnchored(l.Title, l.X+l.W/2, l.Y-6, 0.5, 0)
		}
		dc.SetHexColor(theme.Neutral)
		dc.DrawStringAnchored(l.MinLabel, l.X, l.Y+l.H+15, 0, 0)
		dc.DrawStringAnchored(l.MaxLabel, l.X+l.W, l.Y+l.H+15, 1, 0)
	}

	return dc.Image(), nil
}

func anchorX(anchor string) float64 {
	switch anchor {
	case "middle":
		return 0.5
	case "end":
		return 1
	default:
		return 0
	}
}

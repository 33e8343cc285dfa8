package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/scale"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/styles"
)

const (
	// Frames wider than this are scaled down before quantization to keep
	// animated output to a reasonable size.
	gifMaxWidth = 720

	// Ramp samples in the GIF palette, leaving room for theme colors.
	gifRampColors = 248

	defaultFPS = 4
)

// GIF rasterizes the frames and encodes them as a looping animated GIF.
// The palette is sampled from the ramp plus the style's base colors, so
// quantization barely touches the data colors.
func GIF(frames []render.Scene, style styles.Style, ramp scale.Ramp, fps int) ([]byte, error) {
	if len(frames) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no frames to encode")
	}
	if fps <= 0 {
		fps = defaultFPS
	}
	delay := 100 / fps

	palette := gifPalette(style, ramp)
	anim := &gif.GIF{LoopCount: 0}

	for _, frame := range frames {
		img, err := rasterize(frame, style)
		if err != nil {
			return nil, err
		}
		if frame.Width > gifMaxWidth {
			img = imaging.Resize(img, gifMaxWidth, 0, imaging.Lanczos)
		}

		paletted := image.NewPaletted(img.Bounds(), palette)
		draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding gif")
	}
	return buf.Bytes(), nil
}

func gifPalette(style styles.Style, ramp scale.Ramp) color.Palette {
	palette := ramp.Palette(gifRampColors)
	theme := style.Theme()
	for _, hex := range []string{theme.Background, theme.Neutral, theme.Ink} {
		if c, err := colorful.Hex(hex); err == nil {
			palette = append(palette, c)
		}
	}
	return palette
}

// Package scale provides the perceptual color ramps used to encode data
// values in the charts. A ramp is a sequence of anchor colors blended in
// Luv space, which keeps perceived brightness changing evenly along the
// ramp, unlike naive RGB interpolation.
package scale

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
)

// Ramp is an ordered sequence of anchor colors. The zero value is not
// usable; construct ramps with [Named] or [New].
type Ramp struct {
	name    string
	anchors []colorful.Color
}

// New builds a ramp from hex anchor colors such as "#2a1a5e".
func New(name string, hexes ...string) (Ramp, error) {
	if len(hexes) < 2 {
		return Ramp{}, errors.New(errors.ErrCodeInvalidStyle, "ramp needs at least two anchor colors")
	}
	anchors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Ramp{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid ramp color %s", h)
		}
		anchors[i] = c
	}
	return Ramp{name: name, anchors: anchors}, nil
}

// Named returns one of the built-in ramps. Known names are "sunset" and
// "ocean".
func Named(name string) (Ramp, error) {
	switch name {
	case "sunset":
		// Deep violet through magenta to warm yellow.
		return New("sunset", "#2d1160", "#b5367a", "#fe9f6d", "#fcfdbf")
	case "ocean":
		// Pale foam into deep sea blue.
		return New("ocean", "#e0f3f8", "#74add1", "#2166ac", "#0a2d56")
	default:
		return Ramp{}, errors.New(errors.ErrCodeInvalidStyle, "unknown ramp: "+name)
	}
}

// Names lists the built-in ramp names.
func Names() []string {
	return []string{"sunset", "ocean"}
}

// Name returns the ramp's name.
func (r Ramp) Name() string { return r.name }

// At evaluates the ramp at t in [0, 1]. Out-of-range t is clamped; the
// data layers validate their fractions before rendering, so clamping here
// only guards against float noise at the boundaries.
func (r Ramp) At(t float64) colorful.Color {
	if len(r.anchors) == 0 {
		return colorful.Color{}
	}
	if t <= 0 {
		return r.anchors[0]
	}
	if t >= 1 {
		return r.anchors[len(r.anchors)-1]
	}

	segments := float64(len(r.anchors) - 1)
	pos := t * segments
	i := int(pos)
	frac := pos - float64(i)
	return r.anchors[i].BlendLuv(r.anchors[i+1], frac).Clamped()
}

// Hex evaluates the ramp at t and formats the result as "#rrggbb".
func (r Ramp) Hex(t float64) string {
	return r.At(t).Hex()
}

// Palette samples the ramp into n evenly spaced colors, suitable for a
// paletted image. n must be at least 2.
func (r Ramp) Palette(n int) color.Palette {
	if n < 2 {
		n = 2
	}
	p := make(color.Palette, n)
	for i := range p {
		p[i] = r.At(float64(i) / float64(n-1))
	}
	return p
}

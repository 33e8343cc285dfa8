// Package geo lays out the post office map: one point per active office,
// positioned by a linear scaling of latitude and longitude inside the
// continental US bounding box and colored by the office density of its
// state. True map projection math is deliberately out of scope; at
// country scale the linear approximation reads fine.
package geo

import (
	"fmt"

	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/scale"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/styles"
	"github.com/moharchaudhuri17/tidytuesday/pkg/stats"
)

// Continental US bounding box. Offices outside it (AK, HI, territories,
// bad coordinates) are dropped from the map.
const (
	minLat = 24.5
	maxLat = 49.5
	minLon = -125.0
	maxLon = -66.5
)

const (
	defaultWidth  = 960.0
	defaultHeight = 600.0
	marginTop     = 70.0
	marginBottom  = 64.0
	marginSide    = 40.0
	pointRadius   = 1.6

	titleSize    = 24.0
	yearSize     = 30.0
	legendWidth  = 220.0
	legendHeight = 10.0

	legendSwatches = 24
)

// Options controls the map frame.
type Options struct {
	// Width and Height are the canvas size, default 960x600.
	Width, Height float64

	// Title is drawn top left; empty falls back to the standard caption.
	Title string
}

// Frame lays out the map for a single year. maxDensity anchors the top of
// the color scale; pass the value from [MaxDensity] so every frame of an
// animation shares one scale.
func Frame(offices []dataset.PostOffice, census *dataset.Census, year int, ramp scale.Ramp, maxDensity float64, opts Options) render.Scene {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	title := opts.Title
	if title == "" {
		title = "US Post Offices"
	}

	scene := render.Scene{Width: width, Height: height, Label: fmt.Sprintf("%d", year)}
	scene.Texts = append(scene.Texts,
		styles.Text{Content: title, X: marginSide, Y: 42, Size: titleSize},
		styles.Text{Content: fmt.Sprintf("%d", year), X: width - marginSide, Y: 46, Size: yearSize, Anchor: "end"},
	)

	density := make(map[string]float64)
	for _, c := range stats.StateDensity(offices, census, year) {
		density[c.State] = c.PerCapita
	}

	plotW := width - 2*marginSide
	plotH := height - marginTop - marginBottom
	for _, o := range offices {
		if !o.Open(year) {
			continue
		}
		if o.Latitude < minLat || o.Latitude > maxLat || o.Longitude < minLon || o.Longitude > maxLon {
			continue
		}
		t := 0.0
		if maxDensity > 0 {
			t = density[o.State] / maxDensity
		}
		scene.Points = append(scene.Points, styles.Point{
			X:      marginSide + (o.Longitude-minLon)/(maxLon-minLon)*plotW,
			Y:      marginTop + (maxLat-o.Latitude)/(maxLat-minLat)*plotH,
			Radius: pointRadius,
			Color:  ramp.Hex(t),
		})
	}

	scene.Legend = &styles.Legend{
		X:        marginSide,
		Y:        height - marginBottom + 20,
		W:        legendWidth,
		H:        legendHeight,
		Swatches: swatches(ramp, legendSwatches),
		MinLabel: "0",
		MaxLabel: fmt.Sprintf("%.0f", maxDensity),
		Title:    "active offices per 100k residents",
	}
	return scene
}

// Frames builds one scene per year from 'from' to 'to' inclusive, stepping
// by step years, all sharing one density scale. step must be positive.
func Frames(offices []dataset.PostOffice, census *dataset.Census, from, to, step int, ramp scale.Ramp, opts Options) []render.Scene {
	if step <= 0 {
		step = 1
	}
	maxDensity := MaxDensity(offices, census, from, to, step)

	var frames []render.Scene
	for year := from; year <= to; year += step {
		frames = append(frames, Frame(offices, census, year, ramp, maxDensity, opts))
	}
	return frames
}

// MaxDensity returns the highest per-state office density across the year
// range, the shared top of the animation's color scale.
func MaxDensity(offices []dataset.PostOffice, census *dataset.Census, from, to, step int) float64 {
	if step <= 0 {
		step = 1
	}
	var maxDensity float64
	for year := from; year <= to; year += step {
		for _, c := range stats.StateDensity(offices, census, year) {
			if c.PerCapita > maxDensity {
				maxDensity = c.PerCapita
			}
		}
	}
	return maxDensity
}

func swatches(ramp scale.Ramp, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = ramp.Hex(float64(i) / float64(n-1))
	}
	return out
}

// Package render turns aggregated dataset figures into images.
//
// # Overview
//
// The rendering pipeline is split into layout and drawing. Layout
// packages produce a [Scene], a flat list of positioned elements in
// canvas coordinates; drawing is done either by a style (SVG) or by the
// raster sinks (PNG, GIF) from the same scene. One layout therefore
// serves every output format.
//
//   - [chart]: decade-grid layout of stylized year labels
//   - [geo]: point-map layout of post office locations
//   - [scale]: perceptual color ramps
//   - [styles]: SVG visual styles (simple, poster)
//   - [sink]: output encoders (SVG, PNG, animated GIF)
//
// # Usage
//
//	scene, err := chart.Build(decades, cfg, ramp, chart.Options{})
//	svg := sink.SVG(scene, styles.Simple{})
//	png, err := sink.PNG(scene)
//
// [chart]: github.com/moharchaudhuri17/tidytuesday/pkg/render/chart
// [geo]: github.com/moharchaudhuri17/tidytuesday/pkg/render/geo
// [scale]: github.com/moharchaudhuri17/tidytuesday/pkg/render/scale
// [styles]: github.com/moharchaudhuri17/tidytuesday/pkg/render/styles
// [sink]: github.com/moharchaudhuri17/tidytuesday/pkg/render/sink
package render

package pipeline

import (
	"fmt"

	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/scale"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/sink"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render/styles"
)

// encodeScenes renders every requested format from the laid-out scenes.
// Single-frame formats use the last scene; GIF encodes them all.
func encodeScenes(scenes []render.Scene, opts Options) (map[string][]byte, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("no scenes to render")
	}
	style, err := styles.ForName(opts.Style)
	if err != nil {
		return nil, err
	}

	// Single-frame formats show the final frame, where the map is fullest.
	still := scenes[len(scenes)-1]

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.SVG(still, style)
		case FormatPNG:
			data, err := sink.PNG(still, style)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatGIF:
			ramp, err := scale.Named(opts.Ramp)
			if err != nil {
				return nil, err
			}
			data, err := sink.GIF(scenes, style, ramp, opts.FPS)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return artifacts, nil
}

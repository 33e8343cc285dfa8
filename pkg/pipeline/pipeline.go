// Package pipeline provides the core visualization pipeline for tidyviz.
//
// This package implements the complete load → aggregate → layout → render
// pipeline shared by all CLI commands. Centralizing it keeps caching and
// validation behavior identical regardless of the entry point.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Fetch the dataset CSV (network or local file) and parse rows
//  2. Aggregate: Reduce rows to per-year or per-state figures
//  3. Layout: Build positioned scenes from the aggregates
//  4. Render: Encode scenes in the requested formats (SVG, PNG, GIF)
//
// Each stage is cached independently, keyed by a content hash of its input
// plus the options that affect its output.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Dataset: dataset.Bechdel,
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/moharchaudhuri17/tidytuesday/pkg/cache"
	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
)

// Defaults shared by every entry point, so the CLI and library callers
// agree on what an unset option means.
const (
	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultFPS is the default animation speed for GIF output.
	DefaultFPS = 4

	// DefaultStep is the default year step between map frames.
	DefaultStep = 10
)

// Output format names accepted by the render stage.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatGIF = "gif"
)

// ValidFormats enumerates the formats the sinks can encode.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatGIF: true,
}

// ValidStyles enumerates the visual styles the renderers implement.
var ValidStyles = map[string]bool{
	"simple": true,
	"poster": true,
}

// defaultRamps maps each dataset to its color ramp.
var defaultRamps = map[string]string{
	dataset.Bechdel:     "sunset",
	dataset.PostOffices: "ocean",
}

// Options configures a pipeline run. The serializable fields feed the
// cache keys, so two runs with equal options share cached stages.
type Options struct {
	// Load options
	Dataset string `json:"dataset"`
	Input   string `json:"input,omitempty"` // Local CSV path, skips the network
	Refresh bool   `json:"refresh,omitempty"`

	// Aggregate options
	FromYear int `json:"from_year,omitempty"`
	ToYear   int `json:"to_year,omitempty"`

	// Layout options
	Width    float64      `json:"width,omitempty"`
	Height   float64      `json:"height,omitempty"`
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	Glyph    glyph.Config `json:"glyph,omitempty"` // Digit styling for the chart
	Step     int          `json:"step,omitempty"`  // Years between map frames
	FPS      int          `json:"fps,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Ramp    string   `json:"ramp,omitempty"`

	// Runtime collaborators, excluded from cache keys
	Logger *log.Logger     `json:"-"`
	Client *dataset.Client `json:"-"`

	// validated guards against applying defaults twice.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution in logs.
	RunID string

	// Summaries are the per-year aggregates (Bechdel runs only).
	Summaries []glyph.YearSummary

	// Skipped lists years the glyph transform rejected.
	Skipped []glyph.YearError

	// DatasetHash is the content hash of the raw dataset.
	DatasetHash string

	// Artifacts holds the encoded outputs keyed by format name.
	Artifacts map[string][]byte

	// Stats records per-stage timings and sizes.
	Stats Stats

	// CacheInfo records which stages were served from cache.
	CacheInfo CacheInfo
}

// Stats carries the counters printed after a run.
type Stats struct {
	RowCount      int
	SummaryCount  int
	FrameCount    int
	LoadTime      time.Duration
	AggregateTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo reports, per stage, whether the cache answered.
type CacheInfo struct {
	LoadHit      bool // raw dataset
	AggregateHit bool // year or state aggregates
	LayoutHit    bool // positioned scenes
	RenderHit    bool // every requested artifact
}

// ValidateFormat rejects format names no sink can encode.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, gif)", format)
	}
	return nil
}

// ValidateFormats applies ValidateFormat to each element.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle rejects style names no renderer implements.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: simple, poster)", style)
	}
	return nil
}

// ValidateDataset checks that a dataset name is well formed and known.
func ValidateDataset(name string) error {
	if err := errors.ValidateDatasetName(name); err != nil {
		return err
	}
	if _, ok := dataset.SourceURL(name); !ok {
		return fmt.Errorf("invalid dataset: %q (must be one of: bechdel, postoffices)", name)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. Calling it twice is harmless.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.HasFormat(FormatGIF) && !o.IsMap() {
		return fmt.Errorf("gif output requires the postoffices dataset")
	}
	if o.FromYear != 0 && o.ToYear != 0 {
		if err := errors.ValidateYearRange(o.FromYear, o.ToYear); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks only what the load stage needs, for callers
// that stop after fetching.
func (o *Options) ValidateForLoad() error {
	if o.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if err := ValidateDataset(o.Dataset); err != nil {
		return err
	}
	if o.Input != "" {
		if err := errors.ValidatePath(o.Input); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults fills unset layout knobs.
func (o *Options) SetLayoutDefaults() {
	if o.Glyph.Positions == 0 {
		o.Glyph = glyph.DefaultConfig()
	}
	if o.Step == 0 {
		o.Step = DefaultStep
	}
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
}

// SetRenderDefaults fills unset render knobs, picking the dataset's
// color ramp when none was requested.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Ramp == "" {
		o.Ramp = defaultRamps[o.Dataset]
	}
}

// IsChart returns true for the Bechdel decade-grid visualization.
func (o *Options) IsChart() bool {
	return o.Dataset == dataset.Bechdel
}

// IsMap returns true for the post office map visualization.
func (o *Options) IsMap() bool {
	return o.Dataset == dataset.PostOffices
}

// HasFormat reports whether the given format was requested.
func (o *Options) HasFormat(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// SummaryKeyOpts projects the options the aggregate stage depends on.
func (o *Options) SummaryKeyOpts() cache.SummaryKeyOpts {
	return cache.SummaryKeyOpts{
		FromYear: o.FromYear,
		ToYear:   o.ToYear,
	}
}

// LayoutKeyOpts projects the options the layout stage depends on. The
// glyph config is included so font or threshold changes invalidate
// cached scenes.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Viz:      o.Dataset,
		Width:    o.Width,
		Height:   o.Height,
		FromYear: o.FromYear,
		ToYear:   o.ToYear,
		Step:     o.Step,
		Title:    o.Title,
		Subtitle: o.Subtitle,
		Ramp:     o.Ramp,
		Glyph:    o.Glyph,
	}
}

// ArtifactKeyOpts projects the options the render stage depends on.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Ramp:   o.Ramp,
	}
}

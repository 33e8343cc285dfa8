package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/moharchaudhuri17/tidytuesday/pkg/cache"
	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
	"github.com/moharchaudhuri17/tidytuesday/pkg/httputil"
	"github.com/moharchaudhuri17/tidytuesday/pkg/observability"
	"github.com/moharchaudhuri17/tidytuesday/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → aggregate → layout → render pipeline
// with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	runID := uuid.NewString()[:8]
	opts.Logger = opts.Logger.With("run", runID)

	result := &Result{
		RunID:     runID,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Dataset)
	data, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.Dataset, data.RowCount(), result.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.DatasetHash = data.Hash
	result.Stats.RowCount = data.RowCount()
	result.CacheInfo.LoadHit = loadHit

	opts.Logger.Info("loaded dataset",
		"dataset", opts.Dataset,
		"rows", data.RowCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Aggregate
	aggStart := time.Now()
	observability.Pipeline().OnAggregateStart(ctx, opts.Dataset, data.RowCount())
	agg, aggHit, err := r.AggregateWithCacheInfo(ctx, data, opts)
	result.Stats.AggregateTime = time.Since(aggStart)
	observability.Pipeline().OnAggregateComplete(ctx, opts.Dataset, len(agg.Summaries), result.Stats.AggregateTime, err)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	result.Summaries = agg.Summaries
	result.Stats.SummaryCount = len(agg.Summaries)
	result.CacheInfo.AggregateHit = aggHit

	opts.Logger.Info("aggregated rows",
		"summaries", len(agg.Summaries),
		"duration", result.Stats.AggregateTime)

	// Stage 3: Layout
	layoutStart := time.Now()
	scenes, skipped, layoutHit, err := r.LayoutWithCacheInfo(ctx, data, agg, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Skipped = skipped
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.FrameCount = len(scenes)
	result.CacheInfo.LayoutHit = layoutHit

	for _, ye := range skipped {
		opts.Logger.Warn("skipped year", "year", ye.Year, "err", ye.Err)
	}
	opts.Logger.Info("computed layout",
		"frames", len(scenes),
		"duration", result.Stats.LayoutTime)

	// Stage 4: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scenes, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// cacheGet reads a key from the cache, emitting hit/miss events. Errors
// are treated as misses so a broken cache degrades to recomputation.
func (r *Runner) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	raw, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, key)
	return raw, true
}

// cacheSet stores a key in the cache, emitting a set event on success.
func (r *Runner) cacheSet(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
}

// LoadWithCacheInfo fetches and parses the dataset, returning cache hit info.
// The raw CSV is cached at the runner level in addition to any HTTP-level
// caching inside the dataset client, so local-file runs benefit too.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (Data, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return Data{}, false, err
	}
	r.applyLogger(&opts)

	source, _ := dataset.SourceURL(opts.Dataset)
	if opts.Input != "" {
		source = opts.Input
	}
	cacheKey := r.Keyer.DatasetKey(opts.Dataset, source)

	if !opts.Refresh {
		if raw, ok := r.cacheGet(ctx, cacheKey); ok {
			data, err := parseData(opts.Dataset, string(raw))
			if err == nil {
				return data, true, nil // Cache hit
			}
		}
	}

	client := opts.Client
	if client == nil {
		var httpCache *httputil.Cache
		if opts.Input == "" {
			// Downloads get HTTP-level caching on top of the runner's
			// own dataset cache; local file runs touch neither.
			httpCache, _ = dataset.NewCache(cache.TTLDataset)
		}
		client = dataset.NewClient(httpCache)
	}
	csv, err := client.Load(ctx, opts.Dataset, opts.Input, opts.Refresh)
	if err != nil {
		return Data{}, false, err
	}

	data, err := parseData(opts.Dataset, csv)
	if err != nil {
		return Data{}, false, err
	}

	r.cacheSet(ctx, cacheKey, []byte(csv), cache.TTLDataset)

	return data, false, nil // Cache miss
}

// Load is a convenience wrapper that discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (Data, error) {
	data, _, err := r.LoadWithCacheInfo(ctx, opts)
	return data, err
}

// AggregateWithCacheInfo reduces rows to aggregates, returning cache hit
// info. Bechdel summaries are cached; the post office aggregates derive
// cheaply from the rows and are recomputed each run.
func (r *Runner) AggregateWithCacheInfo(ctx context.Context, data Data, opts Options) (Aggregates, bool, error) {
	opts.SetLayoutDefaults()
	r.applyLogger(&opts)

	if !opts.IsChart() {
		return aggregate(data, opts), false, nil
	}

	cacheKey := r.Keyer.SummaryKey(data.Hash, opts.SummaryKeyOpts())

	if !opts.Refresh {
		if raw, ok := r.cacheGet(ctx, cacheKey); ok {
			var summaries []glyph.YearSummary
			if err := json.Unmarshal(raw, &summaries); err == nil {
				return Aggregates{Summaries: summaries}, true, nil // Cache hit
			}
		}
	}

	agg := aggregate(data, opts)
	if raw, err := json.Marshal(agg.Summaries); err == nil {
		r.cacheSet(ctx, cacheKey, raw, cache.TTLSummary)
	}

	return agg, false, nil // Cache miss
}

// Aggregate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Aggregate(ctx context.Context, data Data, opts Options) (Aggregates, error) {
	agg, _, err := r.AggregateWithCacheInfo(ctx, data, opts)
	return agg, err
}

// layoutEntry is the cached layout payload. Skipped years ride along so
// cached reruns report the same warnings as the run that built the layout.
type layoutEntry struct {
	Scenes  []render.Scene `json:"scenes"`
	Skipped []skippedYear  `json:"skipped,omitempty"`
}

// skippedYear is the serializable form of a glyph.YearError.
type skippedYear struct {
	Year   int    `json:"year"`
	Reason string `json:"reason"`
}

func toSkippedYears(errs []glyph.YearError) []skippedYear {
	out := make([]skippedYear, len(errs))
	for i, ye := range errs {
		out[i] = skippedYear{Year: ye.Year, Reason: ye.Err.Error()}
	}
	return out
}

func fromSkippedYears(sk []skippedYear) []glyph.YearError {
	out := make([]glyph.YearError, len(sk))
	for i, s := range sk {
		out[i] = glyph.YearError{
			Year: s.Year,
			Err:  errors.New(errors.ErrCodeInvalidRange, "%s", s.Reason),
		}
	}
	return out
}

// LayoutWithCacheInfo builds the scenes, returning skipped years and cache
// hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, data Data, agg Aggregates, opts Options) ([]render.Scene, []glyph.YearError, bool, error) {
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(data.Hash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if raw, ok := r.cacheGet(ctx, cacheKey); ok {
			var entry layoutEntry
			if err := json.Unmarshal(raw, &entry); err == nil && len(entry.Scenes) > 0 {
				return entry.Scenes, fromSkippedYears(entry.Skipped), true, nil // Cache hit
			}
		}
	}

	scenes, skipped, err := buildScenes(data, agg, opts)
	if err != nil {
		return nil, nil, false, err
	}

	entry := layoutEntry{Scenes: scenes, Skipped: toSkippedYears(skipped)}
	if raw, err := json.Marshal(entry); err == nil {
		r.cacheSet(ctx, cacheKey, raw, cache.TTLSummary)
	}

	return scenes, skipped, false, nil // Cache miss
}

// RenderWithCacheInfo encodes the scenes in every requested format,
// returning cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scenes []render.Scene, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	if err := ValidateStyle(opts.Style); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute the cache key from the layout content.
	layoutData, err := json.Marshal(scenes)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache.
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, ok := r.cacheGet(ctx, cacheKey); ok {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	rendered, err := encodeScenes(scenes, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		r.cacheSet(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, scenes []render.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scenes, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

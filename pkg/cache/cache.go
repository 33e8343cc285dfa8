// Package cache provides pipeline result caching for tidyviz.
//
// Three stages of the visualization pipeline are cached independently:
// fetched datasets (raw CSV bytes), computed aggregates, and rendered
// artifacts. Each stage has its own key type so that changing one option
// (say, the output style) invalidates only the artifacts that depend on it.
//
// The [Cache] interface abstracts the storage backend. The file backend is
// used by the CLI; [NullCache] disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for pipeline results.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Stage TTLs. Datasets can change upstream, so they expire within a day;
// derived stages are pure functions of their inputs and keep longer.
const (
	TTLDataset  = 24 * time.Hour
	TTLSummary  = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// SummaryKeyOpts are the options that affect aggregation results.
type SummaryKeyOpts struct {
	FromYear int
	ToYear   int
}

// LayoutKeyOpts are the options that affect layout computation.
type LayoutKeyOpts struct {
	Viz      string
	Width    float64
	Height   float64
	FromYear int
	ToYear   int
	Step     int
	Title    string
	Subtitle string

	// Ramp is part of the layout key because ramp colors are baked into
	// the laid-out scenes.
	Ramp string

	// Glyph captures the digit styling config, JSON-serialized into the
	// key so config changes invalidate cached chart layouts.
	Glyph any
}

// ArtifactKeyOpts are the options that affect rendered output.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Ramp   string
}

// Keyer generates cache keys for each pipeline stage.
type Keyer interface {
	// DatasetKey identifies a fetched dataset by name and source URL or path.
	DatasetKey(name, source string) string

	// SummaryKey identifies aggregation output for a dataset content hash.
	SummaryKey(datasetHash string, opts SummaryKeyOpts) string

	// LayoutKey identifies layout output for a summary content hash.
	LayoutKey(summaryHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact for a layout content hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for dataset caching.
func (k *DefaultKeyer) DatasetKey(name, source string) string {
	return hashKey("dataset", name, source)
}

// SummaryKey generates a key for aggregation caching.
func (k *DefaultKeyer) SummaryKey(datasetHash string, opts SummaryKeyOpts) string {
	return hashKey("summary", datasetHash, opts)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(summaryHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", summaryHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

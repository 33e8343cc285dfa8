package cache

// ScopedKeyer wraps a Keyer with a prefix so that independent runs can share
// one cache directory without key collisions. The CLI scopes keys per
// dataset; tests scope keys per test case.
//
// Example usage:
//
//	bechdelKeyer := NewScopedKeyer(NewDefaultKeyer(), "bechdel:")
//	postKeyer := NewScopedKeyer(NewDefaultKeyer(), "postoffices:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DatasetKey generates a prefixed key for dataset caching.
func (k *ScopedKeyer) DatasetKey(name, source string) string {
	return k.prefix + k.inner.DatasetKey(name, source)
}

// SummaryKey generates a prefixed key for aggregation caching.
func (k *ScopedKeyer) SummaryKey(datasetHash string, opts SummaryKeyOpts) string {
	return k.prefix + k.inner.SummaryKey(datasetHash, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(summaryHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(summaryHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

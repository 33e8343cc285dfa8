// Package observability lets a host process watch the pipeline without
// the pipeline depending on any metrics backend.
//
// Three hook interfaces cover the events worth measuring: pipeline stage
// starts and completions, cache hits, misses, and writes, and the HTTP
// requests the dataset fetcher makes. All hooks default to no-ops;
// whoever embeds the pipeline registers implementations once at startup:
//
//	observability.SetPipelineHooks(&prometheusHooks{})
//
// and the pipeline emits as it runs:
//
//	observability.Pipeline().OnLoadStart(ctx, dataset)
//	// ... load dataset ...
//	observability.Pipeline().OnLoadComplete(ctx, dataset, rowCount, duration, err)
//
// Registration lives in main, not in libraries, which keeps backends
// swappable and import cycles impossible.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the three pipeline stages. The
// dataset argument is "bechdel" or "postoffices".
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, dataset string)
	OnLoadComplete(ctx context.Context, dataset string, rowCount int, duration time.Duration, err error)

	OnAggregateStart(ctx context.Context, dataset string, rowCount int)
	OnAggregateComplete(ctx context.Context, dataset string, summaryCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups and writes. The keyType
// names the cached stage, such as "layout" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from dataset downloads. OnError fires for
// transport failures; status codes arrive through OnResponse.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopPipelineHooks discards every pipeline event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                    {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnAggregateStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnAggregateComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                                {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)       {}

// NoopCacheHooks discards every cache event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks discards every HTTP event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers pipeline hooks. Call it from main before
// the first run; a nil argument is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers cache hooks. Call it from main before the
// first run; a nil argument is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers HTTP hooks. Call it from main before the
// first run; a nil argument is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op defaults. Tests use it to isolate hook state.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}

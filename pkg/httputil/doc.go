// Package httputil backs the dataset fetch client with response caching
// and retries.
//
// [Cache] keeps raw HTTP responses under ~/.cache/tidyviz so repeat
// renders skip the download entirely; `tidyviz cache clear` empties it.
// [Retry] reruns transient failures (timeouts, resets, 5xx) with
// exponential backoff, while permanent failures such as a 404 for a
// misspelled dataset return immediately.
//
// Note the split with the cache package: that one caches pipeline stage
// outputs keyed by content hashes, this one caches what came over the
// wire keyed by dataset.
package httputil

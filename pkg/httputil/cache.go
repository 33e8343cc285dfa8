package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when an entry exists but has
// outlived the cache's TTL. The stale bytes stay on disk; fetch fresh
// data and [Cache.Set] it to refresh the entry:
//
//	ok, err := cache.Get("bechdel:raw", &csv)
//	if errors.Is(err, httputil.ErrExpired) {
//		// refetch and Set
//	}
var ErrExpired = errors.New("cache entry expired")

// Cache holds fetched HTTP responses on disk so reruns skip the network.
// The source CSVs are a few megabytes and change rarely; a day-old copy
// is as good as a fresh one.
//
// Entries are JSON files named by the SHA-256 of their key, so any string
// works as a key. Freshness comes from file modification time against the
// cache's TTL; a TTL of 0 never expires. Instances are not goroutine-safe,
// but separate instances, including ones in other processes, can share a
// directory.
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache opens a response cache in dir, or under ~/.cache/tidyviz when
// dir is empty. The directory is created if needed.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "tidyviz")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl, prefix: ""}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the entry time-to-live; 0 means entries never expire.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get unmarshals the entry for key into v. It returns (true, nil) on a
// fresh hit, (false, nil) on a miss, and (false, [ErrExpired]) when the
// entry has outlived the TTL; v is untouched except on a hit.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set stores v under key as JSON, replacing any existing entry and
// restarting its TTL.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a view of the cache that prefixes every key, keeping
// the two datasets' entries apart:
//
//	bechdel := cache.Namespace("bechdel:")
//	post := cache.Namespace("postoffices:")
//
// Namespaces share the parent's directory and TTL, and they nest.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}

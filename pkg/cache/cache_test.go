package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	if _, hit, _ := c.Get(ctx, "bechdel"); hit {
		t.Error("expected miss before Set")
	}

	// Round trip
	if err := c.Set(ctx, "bechdel", []byte("csv-data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "bechdel")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "csv-data" {
		t.Errorf("Get returned %q, want %q", data, "csv-data")
	}

	// Expired entries are treated as misses
	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set with negative ttl: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "stale"); hit {
		t.Error("expired entry should be a miss")
	}

	// Delete removes entries; deleting again is not an error
	if err := c.Delete(ctx, "bechdel"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "bechdel"); hit {
		t.Error("expected miss after Delete")
	}
	if err := c.Delete(ctx, "bechdel"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// DatasetKey distinguishes sources
	dk1 := k.DatasetKey("bechdel", "https://example.com/a.csv")
	dk2 := k.DatasetKey("bechdel", "https://example.com/b.csv")
	if dk1 == dk2 {
		t.Error("Different sources should produce different dataset keys")
	}

	// SummaryKey should include options in hash
	sk1 := k.SummaryKey("hash123", SummaryKeyOpts{FromYear: 1888, ToYear: 2021})
	sk2 := k.SummaryKey("hash123", SummaryKeyOpts{FromYear: 1900, ToYear: 2021})
	if sk1 == sk2 {
		t.Error("Different SummaryKeyOpts should produce different keys")
	}

	// LayoutKey
	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{Viz: "chart", Width: 800})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{Viz: "map", Width: 800})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Style: "simple"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Style: "simple"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "bechdel:")

	// All keys should be prefixed
	dk := scoped.DatasetKey("bechdel", "local.csv")
	if len(dk) < 9 || dk[:8] != "bechdel:" {
		t.Errorf("ScopedKeyer DatasetKey should be prefixed: %s", dk)
	}

	sk := scoped.SummaryKey("hash", SummaryKeyOpts{})
	if len(sk) < 9 || sk[:8] != "bechdel:" {
		t.Errorf("ScopedKeyer SummaryKey should be prefixed: %s", sk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.DatasetKey("bechdel", "src")
	want := "prefix:" + NewDefaultKeyer().DatasetKey("bechdel", "src")
	if key != want {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-redis-url"); err == nil {
		t.Error("NewRedisCache should reject a malformed URL")
	}
}

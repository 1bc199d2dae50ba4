package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	ctx := context.Background()

	key := NewDefaultKeyer().DiagramKey("abc")
	if err := c.Set(ctx, key, []byte("payload"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit {
		t.Fatalf("Get = (%v, %v), want hit", hit, err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want payload", data)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	_, hit, err := c.Get(context.Background(), "diagram:missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Error("expected miss for unknown key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	ctx := context.Background()

	if err := c.Set(ctx, "artifact:x", []byte("old"), -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:x"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	ctx := context.Background()

	_ = c.Set(ctx, "layout:y", []byte("v"), 0)
	if err := c.Delete(ctx, "layout:y"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:y"); hit {
		t.Error("deleted entry should be a miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "layout:missing"); err != nil {
		t.Errorf("Delete of missing key = %v, want nil", err)
	}
}

func TestFileCacheClearAndSize(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	fc := c.(*FileCache)
	ctx := context.Background()

	_ = c.Set(ctx, "a:1", []byte("one"), 0)
	_ = c.Set(ctx, "b:2", []byte("two"), 0)

	entries, bytes, err := fc.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if entries != 2 || bytes == 0 {
		t.Errorf("Size = (%d, %d), want 2 entries with nonzero bytes", entries, bytes)
	}

	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	entries, _, _ = fc.Size()
	if entries != 0 {
		t.Errorf("entries after Clear = %d, want 0", entries)
	}
}

func TestNullCacheAlwaysMisses(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("null cache should never hit")
	}
}

func TestKeyerDeterminism(t *testing.T) {
	k := NewDefaultKeyer()
	opts := LayoutKeyOpts{BitsPerRow: 32, BitWidth: 32, RowHeight: 32, ShowBits: true}

	if k.LayoutKey("h1", opts) != k.LayoutKey("h1", opts) {
		t.Error("same inputs should produce the same key")
	}
	if k.LayoutKey("h1", opts) == k.LayoutKey("h2", opts) {
		t.Error("different hashes should produce different keys")
	}

	other := opts
	other.BitsPerRow = 16
	if k.LayoutKey("h1", opts) == k.LayoutKey("h1", other) {
		t.Error("different options should produce different keys")
	}
}

func TestScopedKeyerPrefix(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "tenant:42:")

	got := scoped.DiagramKey("abc")
	want := "tenant:42:" + base.DiagramKey("abc")
	if got != want {
		t.Errorf("scoped key = %q, want %q", got, want)
	}
}

func TestHash(t *testing.T) {
	a := Hash([]byte("x"))
	b := Hash([]byte("x"))
	c := Hash([]byte("y"))

	if a != b {
		t.Error("Hash should be deterministic")
	}
	if a == c {
		t.Error("different inputs should hash differently")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

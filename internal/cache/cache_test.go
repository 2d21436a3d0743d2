package cache

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/presslens/presslens/internal/model"
)

func TestKey(t *testing.T) {
	k1 := Key("https://example.gov/report")
	k2 := Key("https://example.gov/report")
	k3 := Key("https://example.gov/other")

	if k1 != k2 {
		t.Error("key must be stable for the same URL")
	}
	if k1 == k3 {
		t.Error("different URLs must not collide")
	}
	if !strings.HasPrefix(k1, "presslens:v1:") {
		t.Errorf("key must carry the version prefix: %q", k1)
	}
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.CacheConfig
		want string
	}{
		{"disabled", model.CacheConfig{Enabled: false}, "cache.nopStore"},
		{"memory only", model.CacheConfig{Enabled: true, MemoryTTL: time.Minute}, "*cache.MemoryStore"},
		{"layered", model.CacheConfig{Enabled: true, Dir: t.TempDir(), MemoryTTL: time.Minute, DiskTTL: time.Hour}, "*cache.LayeredStore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFromConfig(tt.cfg)
			switch tt.want {
			case "cache.nopStore":
				if _, ok := store.(nopStore); !ok {
					t.Errorf("expected nop store, got %T", store)
				}
			case "*cache.MemoryStore":
				if _, ok := store.(*MemoryStore); !ok {
					t.Errorf("expected memory store, got %T", store)
				}
			case "*cache.LayeredStore":
				if _, ok := store.(*LayeredStore); !ok {
					t.Errorf("expected layered store, got %T", store)
				}
			}
		})
	}
}

func TestNopStore(t *testing.T) {
	store := NewFromConfig(model.CacheConfig{Enabled: false})

	if err := store.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("nop set failed: %v", err)
	}
	if _, found := store.Get("k"); found {
		t.Error("nop store must never hit")
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)

	if _, found := store.Get("missing"); found {
		t.Error("unexpected hit for missing key")
	}

	if err := store.Set("k", []byte("document body"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, found := store.Get("k")
	if !found || !bytes.Equal(got, []byte("document body")) {
		t.Errorf("round trip failed: %q found=%v", got, found)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := store.Get("k"); found {
		t.Error("key survived delete")
	}
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	_ = store.Set("a", []byte("1"), time.Minute)
	_ = store.Set("b", []byte("2"), time.Minute)

	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := store.Get("a"); found {
		t.Error("key survived clear")
	}
}

func TestDiskStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, time.Hour)

	if err := store.Set("k", []byte("document body"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, found := store.Get("k")
	if !found || !bytes.Equal(got, []byte("document body")) {
		t.Errorf("round trip failed: %q found=%v", got, found)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || filepath.Ext(entries[0].Name()) != ".cache" {
		t.Errorf("expected one .cache file, got %v", entries)
	}
}

func TestDiskStore_ExpiredEntryRemoved(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, time.Hour)

	if err := store.Set("k", []byte("stale"), -time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, found := store.Get("k"); found {
		t.Error("expired entry must not hit")
	}
	if _, err := os.Stat(filepath.Join(dir, "k.cache")); !os.IsNotExist(err) {
		t.Error("expired entry must be removed from disk")
	}
}

func TestDiskStore_CorruptEntryMisses(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, time.Hour)

	if err := os.WriteFile(filepath.Join(dir, "k.cache"), []byte("not json"), 0644); err != nil {
		t.Fatalf("write corrupt entry: %v", err)
	}

	if _, found := store.Get("k"); found {
		t.Error("corrupt entry must read as a miss")
	}
}

func TestLayeredStore_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	store := NewLayeredStore(time.Minute, dir, time.Hour)

	// Seed only the disk layer, as a previous process would have.
	disk := NewDiskStore(dir, time.Hour)
	if err := disk.Set("k", []byte("from disk"), 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	got, found := store.Get("k")
	if !found || !bytes.Equal(got, []byte("from disk")) {
		t.Fatalf("layered get failed: %q found=%v", got, found)
	}

	// After promotion the memory layer answers even without the disk file.
	if err := disk.Delete("k"); err != nil {
		t.Fatalf("delete disk entry: %v", err)
	}
	if _, found := store.Get("k"); !found {
		t.Error("promoted entry must be served from memory")
	}
}

func TestLayeredStore_SetWritesBothLayers(t *testing.T) {
	dir := t.TempDir()
	store := NewLayeredStore(time.Minute, dir, time.Hour)

	if err := store.Set("k", []byte("doc"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	disk := NewDiskStore(dir, time.Hour)
	if _, found := disk.Get("k"); !found {
		t.Error("write must reach the disk layer")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, found := store.Get("k"); found {
		t.Error("key survived clear")
	}
}

// Package cache stores fetched source documents so repeated grounding
// runs against the same URLs do not re-download them.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/presslens/presslens/internal/model"
)

// Store is the document cache interface.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a stable cache key for a source URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "presslens:v1:" + hex.EncodeToString(hash[:])
}

// NewFromConfig builds the configured store. Disabled caching yields a
// no-op store so callers never branch. Without a directory the cache is
// memory-only.
func NewFromConfig(cfg model.CacheConfig) Store {
	if !cfg.Enabled {
		return nopStore{}
	}
	if cfg.Dir == "" {
		return NewMemoryStore(cfg.MemoryTTL, 10*time.Minute)
	}
	return NewLayeredStore(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
}

type nopStore struct{}

func (nopStore) Get(string) ([]byte, bool)               { return nil, false }
func (nopStore) Set(string, []byte, time.Duration) error { return nil }
func (nopStore) Delete(string) error                     { return nil }
func (nopStore) Clear() error                            { return nil }

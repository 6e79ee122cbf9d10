package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores extracted page text for the URL classification path so
// repeat scores of the same page skip the network.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a URL. The version segment
// invalidates old entries when the extraction format changes.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "covlens:v1:" + hex.EncodeToString(sum[:])
}

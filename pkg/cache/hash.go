package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the full SHA-256 of data as a 64-char hex string. It is the
// content hash used for outline text and serialized layouts, so two
// identical inputs share cache entries across machines and sessions.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a cache key from a stage prefix and the JSON encoding of
// the remaining parts: "layout:<hex>" or "artifact:<hex>". The full hash is
// kept; truncating would trade collision safety for nothing.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

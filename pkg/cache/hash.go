package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a "prefix:hex" cache key from the JSON encoding of its
// parts. The prefix names the pipeline stage; the full SHA-256 digest
// keeps keys collision-free across datasets and option combinations.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// Stage outputs are hashed with this to chain each cache key to the
// content that produced it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

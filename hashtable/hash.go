package hashtable

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Stock hash functions for common key types. All of them may produce
// negative values; Table normalizes before indexing.

// StringHash hashes a string key with xxhash.
func StringHash(key string) int64 {
	return int64(xxhash.Sum64String(key))
}

// BytesHash hashes a byte-slice-backed key with xxhash. The key type must be
// convertible to []byte by the caller; this helper takes the raw bytes.
func BytesHash(key []byte) int64 {
	return int64(xxhash.Sum64(key))
}

// Int64Hash hashes an integer key by running its fixed-width encoding
// through xxhash, so that adjacent keys spread across buckets.
func Int64Hash(key int64) int64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return int64(xxhash.Sum64(buf[:]))
}

// IntHash is Int64Hash for the platform int type.
func IntHash(key int) int64 {
	return Int64Hash(int64(key))
}

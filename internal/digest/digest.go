// Package digest maps byte buffers and floats to uniformly distributed
// values in [0,1) via cryptographic hashing. It concentrates the
// collected entropy into the pipeline seed and extracts the final
// pre-threshold value.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"math"
)

// float53Scale normalizes a 53-bit integer into [0,1). Dividing the
// right-shifted 64-bit word by 2^53 keeps every result exactly
// representable as a float64.
const float53Scale = 1.0 / (1 << 53)

// #region seed

// Seed hashes the collected entropy with SHA-512 and derives the
// initial pipeline value from the first eight digest bytes.
func Seed(entropy []byte) float64 {
	sum := sha512.Sum512(entropy)
	return normalize(sum[:8])
}

// #endregion seed

// #region collapse

// Collapse re-hashes the modulated value with SHA-256 and applies the
// 0.5 threshold. The float is serialized as the eight big-endian bytes
// of its IEEE-754 bit pattern; that encoding is the authoritative one
// for cross-checking implementations.
func Collapse(v float64) (raw float64, decision int) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	sum := sha256.Sum256(buf[:])
	raw = normalize(sum[:8])
	if raw >= 0.5 {
		decision = 1
	}
	return raw, decision
}

// #endregion collapse

// normalize interprets eight digest bytes as a big-endian uint64 and
// maps the top 53 bits into [0,1).
func normalize(b []byte) float64 {
	u := binary.BigEndian.Uint64(b)
	return float64(u>>11) * float53Scale
}

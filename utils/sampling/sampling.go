package sampling

import (
	"encoding/binary"
	"math"
)

// Uint64 returns the next 8 bytes of prng as an uint64.
func Uint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Int64 returns a value uniformly distributed in [min, max], up to a
// negligible bias when max-min+1 does not divide 2^64.
func Int64(prng PRNG, min, max int64) int64 {
	if min >= max {
		return min
	}

	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(Uint64(prng))
	}

	return int64(uint64(min) + Uint64(prng)%(span+1))
}

// Float64 returns a float uniformly distributed in [min, max).
func Float64(prng PRNG, min, max float64) float64 {
	f := float64(Uint64(prng)>>11) / (1 << 53)
	return min + f*(max-min)
}

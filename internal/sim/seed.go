package sim

import "github.com/chewxy/math32"

// Mixing constants for the per-cell hash. mixX is 2^32 divided by the
// golden ratio; the remaining constants are avalanche multipliers.
const (
	mixX     = 0x9E3779B9
	mixY     = 0x85EBCA6B
	mulHi    = 0x7FEB352D
	mulLo    = 0x846CA68B
	seedSpan = 1 << 24
)

// cellValue maps (x, y, seed) to a cell state. The coordinates are
// spread by golden-ratio scaling, the fractional part of the seed is
// folded in, and the result is avalanched to a value in [0, 1) that is
// thresholded at 0.5. The function is pure: the same inputs always
// yield the same cell, across runs and across buffers.
func cellValue(x, y uint32, seed float32) uint8 {
	h := x*mixX ^ y*mixY
	h += uint32(fract(seed) * seedSpan)
	h ^= h >> 16
	h *= mulHi
	h ^= h >> 15
	h *= mulLo
	h ^= h >> 16
	if float32(h>>8)/float32(seedSpan) < 0.5 {
		return 1
	}
	return 0
}

// fract returns the fractional part of v, bounded to [0, 1) for any
// finite input including negatives.
func fract(v float32) float32 {
	return v - math32.Floor(v)
}

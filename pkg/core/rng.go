package core

import "math/rand/v2"

// RNG is a per-sample PCG-style random stream. Each primary sample gets its
// own RNG seeded from a pass index and pixel coordinate (see Seed), so a
// single-threaded and a multi-threaded run with the same sample count draw
// the same stream of random values regardless of scheduling.
type RNG struct {
	src *rand.Rand
}

// Seed derives an RNG for one primary sample from the pass's base seed, the
// pixel it belongs to, and the image width. The two PCG seed words keep the
// stream independent of goroutine scheduling order.
func Seed(baseSeed uint64, x, y, width int) RNG {
	pixelSeed := baseSeed + uint64(y*width+x)
	return RNG{src: rand.New(rand.NewPCG(pixelSeed, streamID))}
}

// streamID is the fixed second PCG seed word; only the first word varies per
// pixel, which is sufficient since pixelSeed already covers the full domain.
const streamID = 0xda3e39cb94b95bdb

// Float64 returns a uniform value in [0, 1).
func (r RNG) Float64() float64 {
	return r.src.Float64()
}

package csc

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when a Config carries no
// caller-supplied seed, so a zero-value Config still produces a
// reproducible stream rather than an all-zero one.
const defaultRNGSeed int64 = 1

// normalizeSeed maps a Config.Seed of 0 to defaultRNGSeed and passes any
// other value through verbatim.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer, giving each population slot (and the
// reducer's own tournament RNG) an independent, reproducible stream
// derived from one Config.Seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base
// seed and a stream identifier (e.g. a population slot index).
func deriveRNG(baseSeed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(baseSeed, stream)))
}

// Package randutil derives the random sources used for dealing and for bot
// decisions.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. A seed of zero
// is replaced by the current time so that unconfigured games differ.
func New(seed int64) *rand.Rand {
	u := uint64(Resolve(seed))
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed, or a time-derived seed when seed is zero.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Split derives an independent stream from seed, so the deck and the bots do
// not share draws even when they start from the same configured seed.
func Split(seed int64, stream uint64) *rand.Rand {
	u := uint64(Resolve(seed))
	return rand.New(rand.NewPCG(mix(u^stream), mix(u+goldenRatio64*(stream+1))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

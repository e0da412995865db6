// Package randutil derives reproducible rand/v2 generators from a single
// int64 seed, so every shuffle in the engine can be replayed from a seed.
package randutil

import rand "math/rand/v2"

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's
// PCG wants two 64-bit seeds, so the single seed is stretched with a
// splitmix64 finalizer.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u^0x9e3779b97f4a7c15)))
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

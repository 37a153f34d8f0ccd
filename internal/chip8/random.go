package chip8

import (
	"math/rand/v2"
	"time"
)

// randomSource is a pseudo-random byte source seeded once.
type randomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a pseudo-random byte source. A seed of 0 seeds
// from the current time.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Byte returns the next random byte.
func (r *randomSource) Byte() byte {
	return byte(r.rng.UintN(256))
}

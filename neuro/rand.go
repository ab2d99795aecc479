package neuro

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rand is the source of randomness threaded through the random constructors.
// Every Sample call yields the next uniform draw from [-1, 1] and advances the
// source by exactly one step, so the draw order of a construction is
// observable and reproducible. A Rand is exclusively owned by one
// construction call chain and is not safe for concurrent use; give each
// concurrent caller its own source.
type Rand interface {
	// Sample returns the next uniform sample from [-1, 1].
	Sample() float32
}

// uniformRand adapts a gonum uniform distribution to the Rand interface.
type uniformRand struct {
	dist distuv.Uniform
}

// NewRand returns a seeded Rand drawing uniformly from [-1, 1]. The same seed
// produces the same sequence of samples, and therefore bit-identical networks
// from identical construction sequences.
func NewRand(seed uint64) Rand {
	return &uniformRand{
		dist: distuv.Uniform{Min: -1, Max: 1, Src: rand.NewSource(seed)},
	}
}

// Sample returns the next uniform sample from [-1, 1].
func (u *uniformRand) Sample() float32 {
	return float32(u.dist.Rand())
}

package id

import (
	"math/rand/v2"
	"sync"
)

// Source supplies uniformly distributed 64-bit values. *rand.Rand, *rand.PCG
// and *rand.ChaCha8 from math/rand/v2 all satisfy it.
type Source interface {
	Uint64() uint64
}

type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 { return rand.Uint64() }

// maxNullRedraws bounds how often Random redraws after src yields 0. A
// uniform source hits 0 with probability 2^-64 per draw.
const maxNullRedraws = 16

// Random draws an identifier uniformly from [1, 2^64-1] using src. It never
// returns Null. src is called once per identifier unless it yields 0, in
// which case Random redraws up to maxNullRedraws times and then falls back
// to the runtime generator. src is not synchronized here.
func Random(src Source) U64ID {
	for range maxNullRedraws + 1 {
		if v := src.Uint64(); v != 0 {
			return U64ID(v)
		}
	}
	for {
		if v := rand.Uint64(); v != 0 {
			return U64ID(v)
		}
	}
}

// New draws a random identifier from the runtime's goroutine-safe generator.
// It is cheap and not suitable for anything security sensitive.
func New() U64ID {
	return Random(runtimeSource{})
}

// Generator creates identifiers for newly named assets.
type Generator interface {
	NewID() U64ID
}

// RandomGenerator is a Generator backed by a Source. It is safe for
// concurrent use even when the Source is not.
type RandomGenerator struct {
	mu  sync.Mutex
	src Source
}

// NewRandomGenerator returns a generator using src, or the runtime generator
// when src is nil.
func NewRandomGenerator(src Source) *RandomGenerator {
	return &RandomGenerator{src: src}
}

func (g *RandomGenerator) NewID() U64ID {
	if g.src == nil {
		return New()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return Random(g.src)
}

package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns a PCG source seeded from the runtime's per-process hash
// seed. Each call yields an independent stream.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

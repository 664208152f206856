package quiz

import (
	"hash/fnv"
	"math/rand/v2"
)

// Shuffle returns a permutation of items determined entirely by seed.
// The same (items, seed) pair produces the same ordering on any platform:
// the generator is a PCG seeded from an FNV-1a hash of the seed string, and
// both algorithms have fixed output. The input slice is never mutated.
func Shuffle[T any](items []T, seed string) []T {
	out := make([]T, len(items))
	copy(out, items)

	h := fnv.New64a()
	h.Write([]byte(seed))
	r := rand.New(rand.NewPCG(h.Sum64(), 0))

	// Fisher-Yates, one uniform draw per step mapped to floor(draw*(i+1)).
	for i := len(out) - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

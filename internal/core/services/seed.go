package services

import (
	"hash/fnv"
	"strings"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

// blockSeedStride spaces per-block seeds apart so each block gets a
// distinct but reproducible shuffle derived from the same root seed.
const blockSeedStride = 7919

// DeriveSeed hashes the normalized context into a stable 32-bit seed.
// Identical inputs always yield an identical seed; changing any field
// changes the hash input.
func DeriveSeed(c domain.Context) uint32 {
	fields := []string{
		string(c.Bucket),
		string(c.Tweak),
		string(c.Engine),
		string(c.Situation),
		c.TimeLiteral,
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.Join(fields, "|")))
	return h.Sum32()
}

// blockSeed derives the seed for one block of the response.
func blockSeed(base uint32, blockIndex int) uint32 {
	return base + uint32(blockIndex)*blockSeedStride
}

// rng is a xorshift32 generator. Not cryptographic; it exists to break
// score ties in a reproducible, non-alphabetic order.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	if seed == 0 {
		seed = 1 // xorshift sticks at zero
	}
	return &rng{state: seed}
}

func (r *rng) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// intn returns a value in [0, n).
func (r *rng) intn(n int) int {
	return int(r.next() % uint32(n))
}

// shuffleItems returns a seeded Fisher-Yates permutation of items.
// The input slice is not modified.
func shuffleItems(items []domain.CatalogItem, seed uint32) []domain.CatalogItem {
	shuffled := make([]domain.CatalogItem, len(items))
	copy(shuffled, items)

	r := newRNG(seed)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

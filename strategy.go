package hashtable

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Integer is the set of key types the multiplicative strategy accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Strategy maps a key and a bucket count to a bucket index. The result
// must be in [0, capacity) and deterministic for a given key and
// capacity. Any implementation can be supplied to New without touching
// the rest of the table.
type Strategy[K any] interface {
	Hash(key K, capacity int) int
}

// Fractional part of the golden ratio, Knuth's recommended multiplier.
const multiplierA = 0.6180339887

// Multiplicative hashes integer keys with the multiplication method:
// index = floor(capacity * frac(key * A)). Sequential keys spread
// evenly across buckets without prime-sized tables.
//
// The product key * A is computed in float64, so the fractional part is
// only meaningful while it fits the 53-bit mantissa: for |key| at or
// above 2^53 the distribution degrades and chains skew. Lookups stay
// correct regardless; large keys should use a mixing strategy instead.
type Multiplicative[K Integer] struct{}

// Hash implements Strategy.
func (Multiplicative[K]) Hash(key K, capacity int) int {
	product := float64(key) * multiplierA
	frac := product - math.Floor(product) // in [0, 1) for negative keys too
	idx := int(float64(capacity) * frac)
	if idx >= capacity { // frac can round against 1.0
		idx = capacity - 1
	}
	return idx
}

// XXString hashes string keys with 64-bit xxHash, reduced modulo the
// bucket count. Use it where keys are not integers or fall outside the
// range Multiplicative handles well.
type XXString[K ~string] struct{}

// Hash implements Strategy.
func (XXString[K]) Hash(key K, capacity int) int {
	return int(xxhash.Sum64String(string(key)) % uint64(capacity))
}

package hashtable

import "fmt"

// bucketArray is a fixed-capacity sequence of chains. Every slot holds
// a chain from construction on; an empty bucket is a chain with zero
// entries, never a nil slot.
type bucketArray[K comparable, V any] struct {
	slots []*chain[K, V]
}

func newBucketArray[K comparable, V any](capacity int) *bucketArray[K, V] {
	slots := make([]*chain[K, V], capacity)
	for i := range slots {
		slots[i] = &chain[K, V]{}
	}
	return &bucketArray[K, V]{slots: slots}
}

// at returns the chain at bucket index i. An index outside
// [0, capacity) is a programming error and panics.
func (b *bucketArray[K, V]) at(i int) *chain[K, V] {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("hashtable: bucket index %d out of range [0, %d)", i, len(b.slots)))
	}
	return b.slots[i]
}

func (b *bucketArray[K, V]) capacity() int {
	return len(b.slots)
}

package hashtable

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the bucket count NewDefault starts with and the
// floor below which Delete never shrinks the table.
const DefaultCapacity = 8

// Table is a hash table resolving collisions by separate chaining.
// It is not safe for concurrent use.
type Table[K comparable, V any] struct {
	buckets  *bucketArray[K, V]
	strategy Strategy[K]
	count    int
}

// New creates a table with the given initial capacity and hash
// strategy. Capacity must be at least 1; DefaultCapacity or more is
// recommended so light use does not trigger an immediate resize.
func New[K comparable, V any](initialCapacity int, strategy Strategy[K]) (*Table[K, V], error) {
	if initialCapacity < 1 {
		return nil, fmt.Errorf("initial capacity must be at least 1, got %d", initialCapacity)
	}
	if strategy == nil {
		return nil, errors.New("hash strategy must not be nil")
	}
	return &Table[K, V]{
		buckets:  newBucketArray[K, V](initialCapacity),
		strategy: strategy,
	}, nil
}

// NewDefault creates a table for integer keys with DefaultCapacity
// buckets and the multiplicative strategy.
func NewDefault[K Integer, V any]() *Table[K, V] {
	t, err := New[K, V](DefaultCapacity, Multiplicative[K]{})
	if err != nil {
		panic(err) // unreachable, arguments are fixed and valid
	}
	return t
}

// bucketFor picks the chain for key under the current capacity.
func (t *Table[K, V]) bucketFor(key K) *chain[K, V] {
	return t.buckets.at(t.strategy.Hash(key, t.buckets.capacity()))
}

// Put inserts a key-value pair. If the key is already present its value
// is overwritten in place and the table is otherwise untouched; a new
// key increments the count and may grow the table.
func (t *Table[K, V]) Put(key K, value V) {
	c := t.bucketFor(key)
	if e := c.find(key); e != nil {
		e.value = value
		return
	}
	c.insert(key, value)
	t.count++
	if t.count >= t.buckets.capacity() {
		t.resize(t.buckets.capacity() * 2)
	}
}

// Get returns the value stored for key and whether it was present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if e := t.bucketFor(key).find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.bucketFor(key).find(key) != nil
}

// Delete removes the entry for key and reports whether one was found.
// Dropping to a quarter of the capacity halves the table, but never
// below DefaultCapacity.
func (t *Table[K, V]) Delete(key K) bool {
	if !t.bucketFor(key).remove(key) {
		return false
	}
	t.count--
	if n := t.buckets.capacity(); t.count <= n/4 && n > DefaultCapacity {
		t.resize(n / 2)
	}
	return true
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	return t.count
}

// Capacity returns the current bucket count.
func (t *Table[K, V]) Capacity() int {
	return t.buckets.capacity()
}

// Clear drops every entry and resets the table to DefaultCapacity.
func (t *Table[K, V]) Clear() {
	for _, c := range t.buckets.slots {
		c.clear()
	}
	t.buckets = newBucketArray[K, V](DefaultCapacity)
	t.count = 0
}

// resize replaces the bucket array with one of newCapacity buckets and
// re-inserts every entry through the normal Put path, walking the old
// buckets in ascending order and each chain head to tail. Re-insertion
// recomputes each entry's bucket for the new capacity; the doubling and
// halving factors guarantee it cannot trigger a nested resize.
func (t *Table[K, V]) resize(newCapacity int) {
	old := t.buckets
	t.buckets = newBucketArray[K, V](newCapacity)
	t.count = 0
	for i := 0; i < old.capacity(); i++ {
		for e := old.at(i).head; e != nil; e = e.next {
			t.Put(e.key, e.value)
		}
	}
}

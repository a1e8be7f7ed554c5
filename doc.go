/*
Package hashtable provides a generic hash table with separate chaining.

Table is an in-memory key-value store with amortized O(1) insertion,
lookup and deletion. Collisions are resolved by chaining: each bucket
holds an ordered list of entries, and the bucket array grows and shrinks
automatically as entries come and go.

Basic usage:

	import hashtable "github.com/PranavPujar/hashtable-with-chaining"

	// Create a table for integer keys with the default capacity
	// and the multiplicative hash strategy.
	ht := hashtable.NewDefault[int, string]()

	// Insert data
	ht.Put(42, "meaning")

	// Retrieve data
	value, ok := ht.Get(42)
	if ok {
		fmt.Println("Value:", value)
	}

	// Remove data
	removed := ht.Delete(42)
	fmt.Println("Removed:", removed)

String keys use the xxHash strategy:

	ht, err := hashtable.New[string, int](hashtable.DefaultCapacity, hashtable.XXString[string]{})

Features:

  - Generic over key and value types
  - Separate chaining for collision resolution, insertion order kept per bucket
  - Pluggable hash strategies via the Strategy interface
  - Multiplicative hashing (Knuth's method) for integer keys
  - xxHash-based strategy for string keys
  - Automatic doubling when the entry count reaches the bucket count
  - Automatic halving at quarter load, never below DefaultCapacity

Implementation Details:

The table owns a fixed-size array of buckets, each holding a doubly
linked list of entries. Every operation hashes the key against the
current bucket count to pick a chain, then scans that chain. When an
insertion brings the entry count up to the bucket count, the bucket
array is doubled and every entry is re-inserted under the new capacity;
deletion halves the array once the count drops to a quarter of it. The
asymmetric grow and shrink thresholds keep alternating insert/delete
sequences near a boundary from thrashing between resizes.

The table is not safe for concurrent use. Callers that share a table
across goroutines must serialize access themselves, for example with a
sync.Mutex around every operation.
*/
package hashtable

package hashtable

// entry is a single key-value pair linked into a chain.
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// chain is the doubly linked list of entries owned by one bucket.
// Insertion order is preserved. Keeping keys unique is the table's
// job, not the chain's.
type chain[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	size int
}

// insert appends a new entry at the tail. The caller must have checked
// that key is not already present.
func (c *chain[K, V]) insert(key K, value V) {
	e := &entry[K, V]{key: key, value: value}
	if c.head == nil {
		c.head = e
		c.tail = e
	} else {
		e.prev = c.tail
		c.tail.next = e
		c.tail = e
	}
	c.size++
}

// find returns the first entry with the given key, or nil.
func (c *chain[K, V]) find(key K) *entry[K, V] {
	for e := c.head; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// remove unlinks the entry with the given key and reports whether one
// was found.
func (c *chain[K, V]) remove(key K) bool {
	for e := c.head; e != nil; e = e.next {
		if e.key != key {
			continue
		}
		if e.prev != nil {
			e.prev.next = e.next
		} else {
			c.head = e.next
		}
		if e.next != nil {
			e.next.prev = e.prev
		} else {
			c.tail = e.prev
		}
		c.size--
		return true
	}
	return false
}

// clear drops every entry at once.
func (c *chain[K, V]) clear() {
	c.head = nil
	c.tail = nil
	c.size = 0
}

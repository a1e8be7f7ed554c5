package main

import (
	"fmt"
	"log"

	hashtable "github.com/PranavPujar/hashtable-with-chaining"
)

func main() {
	// Create a table for integer keys with the defaults:
	// 8 buckets and the multiplicative strategy.
	ht := hashtable.NewDefault[int, int]()

	// Insert some data
	for i := 0; i < 10; i++ {
		ht.Put(i, i*100)
	}

	fmt.Printf("Inserted 10 key-value pairs, capacity grew to %d\n", ht.Capacity())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		value, found := ht.Get(i)
		if found {
			fmt.Printf("Key %d => Value %d\n", i, value)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Update a value in place
	ht.Put(2, 999)
	if value, found := ht.Get(2); found {
		fmt.Printf("Updated key 2 => Value %d\n", value)
	}

	// Remove a key
	if ht.Delete(5) {
		fmt.Printf("Removed key 5, %d entries left\n", ht.Len())
	}
	if _, found := ht.Get(5); !found {
		fmt.Println("Key 5 is gone")
	}

	// Insert a second batch and check membership
	for i := 10; i < 20; i++ {
		ht.Put(i, i*100)
	}
	fmt.Printf("Contains 15: %v\n", ht.Contains(15))
	fmt.Printf("Contains 5: %v\n", ht.Contains(5))

	// String keys use the xxHash strategy instead.
	words, err := hashtable.New[string, int](hashtable.DefaultCapacity, hashtable.XXString[string]{})
	if err != nil {
		log.Fatalf("Failed to create string table: %v", err)
	}
	words.Put("hello", 1)
	words.Put("world", 2)
	if value, found := words.Get("world"); found {
		fmt.Printf("Key world => Value %d\n", value)
	}

	// Bulk deletion shrinks the table back toward the floor.
	for i := 0; i < 20; i++ {
		ht.Delete(i)
	}
	fmt.Printf("After draining: %d entries, capacity %d\n", ht.Len(), ht.Capacity())

	fmt.Println("Example completed successfully")
}

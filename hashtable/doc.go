/*
Package hashtable provides a generic hash table backed by an array of
collision chains.

Table is designed as a transparent implementation of open hashing: every
bucket of the backing array holds a singly linked chain of entries, and the
array doubles automatically as the table fills. It is a single-writer
structure with no internal locking.

Basic usage:

	import "github.com/theflywheel/dstructs/hashtable"

	// Create a table with string keys
	t := hashtable.NewString[int]()

	// Insert data
	t.Put("apples", 3)
	t.Put("pears", 7)

	// Replace a value; the previous one comes back
	prev, replaced := t.Put("apples", 5) // prev == 3, replaced == true

	// Retrieve data
	n, ok := t.Get("pears")
	if ok {
		fmt.Println("pears:", n)
	}

	// Inspect the bucket layout
	t.Fprint(os.Stdout)

Features:

  - Generic keys and values; any key type with a HashFunc works
  - Chained buckets preserving insertion order within a chain
  - Automatic doubling when the entry count reaches the bucket count,
    so the load factor never exceeds 1.0 after a completed insert
  - Put returns the previous value on key replacement
  - Stock xxhash-based hash functions for string, byte and integer keys

Implementation Details:

The bucket array starts at 16 slots and is replaced wholesale on resize:
the entry count is reset and every entry is reinserted through the normal
put path, hashing against the new array length. The bucket index for a key
is abs(hash(key)) mod bucketCount; hash functions are free to return
negative values.

A degenerate hash function that sends every key to the same bucket produces
one long chain. That is a performance characteristic, not an error.
*/
package hashtable

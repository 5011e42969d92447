package hashtable

const (
	// InitialCapacity is the bucket count of a freshly created table.
	InitialCapacity = 16
	// CapacityMultiplier is the growth factor applied on every resize.
	CapacityMultiplier = 2
)

// HashFunc maps a key to a signed hash value. Negative results are legal;
// the table normalizes them before computing a bucket index.
type HashFunc[K comparable] func(K) int64

// entry is one link of a bucket's collision chain.
type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Table is a chained hash table that maps keys to values. The bucket array
// starts at InitialCapacity and doubles whenever the number of stored entries
// reaches the bucket count, so the load factor never exceeds 1.0 after a
// completed insert.
//
// Table is not safe for concurrent use. Callers that share a table across
// goroutines must provide their own synchronization.
type Table[K comparable, V any] struct {
	buckets []*entry[K, V]
	size    int
	hash    HashFunc[K]
}

// New creates an empty table that hashes keys with the given function.
// It panics if hash is nil.
func New[K comparable, V any](hash HashFunc[K]) *Table[K, V] {
	if hash == nil {
		panic("hashtable: nil hash function")
	}
	return &Table[K, V]{
		buckets: make([]*entry[K, V], InitialCapacity),
		hash:    hash,
	}
}

// NewString creates an empty table with string keys hashed by xxhash.
func NewString[V any]() *Table[string, V] {
	return New[string, V](StringHash)
}

// Put stores value under key. If the key is already present its value is
// replaced and the previous value is returned with replaced set to true;
// the entry count does not change. Otherwise the entry is appended to its
// bucket's chain, the entry count grows by one, and replaced is false.
//
// The capacity check runs before the bucket index is computed, so an insert
// that would push the load factor past 1.0 grows the table first and hashes
// against the new bucket count.
func (t *Table[K, V]) Put(key K, value V) (prev V, replaced bool) {
	if t.size == len(t.buckets) {
		t.grow()
	}

	idx := t.bucketIndex(key, len(t.buckets))
	head := t.buckets[idx]

	if head == nil {
		t.buckets[idx] = &entry[K, V]{key: key, value: value}
		t.size++
		return prev, false
	}

	for e := head; ; e = e.next {
		if e.key == key {
			prev = e.value
			e.value = value
			return prev, true
		}
		if e.next == nil {
			e.next = &entry[K, V]{key: key, value: value}
			t.size++
			return prev, false
		}
	}
}

// Get returns the value stored under key, if any.
func (t *Table[K, V]) Get(key K) (value V, ok bool) {
	idx := t.bucketIndex(key, len(t.buckets))
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return value, false
}

// Len returns the number of distinct keys in the table.
func (t *Table[K, V]) Len() int {
	return t.size
}

// Cap returns the current bucket count.
func (t *Table[K, V]) Cap() int {
	return len(t.buckets)
}

// grow replaces the bucket array with one twice as long and reinserts every
// entry through the normal put path so that each key is reachable by hashing
// against the new bucket count. Entries are revisited in ascending bucket
// order, head to tail within each chain.
func (t *Table[K, V]) grow() {
	old := t.buckets
	t.buckets = make([]*entry[K, V], len(old)*CapacityMultiplier)
	t.size = 0
	for _, e := range old {
		for ; e != nil; e = e.next {
			t.Put(e.key, e.value)
		}
	}
}

// bucketIndex computes abs(hash(key)) mod n. The absolute value is taken
// before the modulo; widening to uint64 keeps -MinInt64 from overflowing.
func (t *Table[K, V]) bucketIndex(key K, n int) int {
	h := t.hash(key)
	u := uint64(h)
	if h < 0 {
		u = uint64(-h)
	}
	return int(u % uint64(n))
}

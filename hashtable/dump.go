package hashtable

import (
	"fmt"
	"io"
	"strings"
)

// Pair is one key-value pair of a dumped chain.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Bucket is the dumped content of one bucket: its index and the chain in
// insertion order. An empty bucket has a nil Chain.
type Bucket[K comparable, V any] struct {
	Index int
	Chain []Pair[K, V]
}

// Dump returns a snapshot of every bucket in ascending index order, each
// chain head to tail. The returned slices are copies; mutating them does not
// affect the table.
func (t *Table[K, V]) Dump() []Bucket[K, V] {
	out := make([]Bucket[K, V], len(t.buckets))
	for i, e := range t.buckets {
		b := Bucket[K, V]{Index: i}
		for ; e != nil; e = e.next {
			b.Chain = append(b.Chain, Pair[K, V]{Key: e.key, Value: e.value})
		}
		out[i] = b
	}
	return out
}

// Fprint writes the table content to w, one line per bucket:
//
//	0: key1:value1 -> key2:value2
//	1:
//	2: key3:value3
//
// Keys and values are formatted with their default fmt representation.
func (t *Table[K, V]) Fprint(w io.Writer) error {
	var sb strings.Builder
	for i, e := range t.buckets {
		fmt.Fprintf(&sb, "%d: ", i)
		for ; e != nil; e = e.next {
			fmt.Fprintf(&sb, "%v:%v", e.key, e.value)
			if e.next != nil {
				sb.WriteString(" -> ")
			}
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write table dump: %w", err)
	}
	return nil
}

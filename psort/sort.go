package psort

import "golang.org/x/exp/constraints"

// Sort sorts elems in place in natural ascending order, scheduling
// independent subproblems on s, and returns the same slice.
func Sort[T constraints.Ordered](s Scheduler, elems []T) []T {
	return SortFunc(s, elems, func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// SortFunc sorts elems in place by cmp, which must return a negative number
// when a orders before b, a positive number when a orders after b, and zero
// otherwise. The merge is stable: equal elements keep their relative order.
//
// At every recursion level the right half is forked onto s while the left
// half is sorted on the current goroutine; the merge waits on the fork, so
// it never sees a half-sorted input. SortFunc panics if s or cmp is nil,
// before any work is scheduled. A nil slice is the empty sequence.
func SortFunc[T any](s Scheduler, elems []T, cmp func(a, b T) int) []T {
	if s == nil {
		panic("psort: nil scheduler")
	}
	if cmp == nil {
		panic("psort: nil comparator")
	}
	sortInto(s, elems, cmp)
	return elems
}

func sortInto[T any](s Scheduler, elems []T, cmp func(a, b T) int) {
	if len(elems) <= 1 {
		return
	}

	mid := len(elems) / 2
	left := append([]T(nil), elems[:mid]...)
	right := append([]T(nil), elems[mid:]...)

	fork := Fork(s, func() []T {
		sortInto(s, right, cmp)
		return right
	})
	sortInto(s, left, cmp)

	merge(elems, left, fork.Join(), cmp)
}

// merge writes the union of two sorted halves back into the parent slice,
// taking the lesser head at each step and preferring left on ties.
func merge[T any](into, left, right []T, cmp func(a, b T) int) {
	i, l, r := 0, 0, 0
	for l < len(left) && r < len(right) {
		if cmp(left[l], right[r]) <= 0 {
			into[i] = left[l]
			l++
		} else {
			into[i] = right[r]
			r++
		}
		i++
	}
	for l < len(left) {
		into[i] = left[l]
		i++
		l++
	}
	for r < len(right) {
		into[i] = right[r]
		i++
		r++
	}
}
